package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/quantummeet/meet-server/internal/domain"
)

func (ctl *Controller) handleChat(pid domain.PeerID, data []byte) {
	type chatPayload struct {
		Type   string `json:"type"`
		Data   string `json:"data"`
		Sender string `json:"sender"`
	}
	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat-message payload")
		return
	}
	ctl.Relay.Chat(pid, p.Data, p.Sender)
}

func (ctl *Controller) handleCaption(pid domain.PeerID, data []byte) {
	type captionPayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
		Text   string `json:"text"`
		Sender string `json:"sender"`
	}
	var p captionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad caption payload")
		return
	}
	ctl.Relay.Caption(pid, domain.RoomID(p.RoomID), p.Text, p.Sender)
}

func (ctl *Controller) handleHandRaise(pid domain.PeerID, data []byte) {
	type handRaisePayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
		Sender string `json:"sender"`
		Raised bool   `json:"raised"`
	}
	var p handRaisePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad hand-raise payload")
		return
	}
	ctl.Relay.HandRaise(pid, domain.RoomID(p.RoomID), p.Sender, p.Raised)
}
