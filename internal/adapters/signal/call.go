package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/quantummeet/meet-server/internal/domain"
)

func (ctl *Controller) handleJoinCall(pid domain.PeerID, data []byte) {
	type joinPayload struct {
		Type        string `json:"type"`
		RoomID      string `json:"roomId"`
		DisplayName string `json:"displayName"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join-call payload")
		return
	}
	ctl.Relay.Join(pid, domain.RoomID(p.RoomID), p.DisplayName)
}

func (ctl *Controller) handleRelaySignal(pid domain.PeerID, data []byte) {
	type signalPayload struct {
		Type    string          `json:"type"`
		To      string          `json:"to"`
		Payload json.RawMessage `json:"payload"`
	}
	var p signalPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad signal payload")
		return
	}
	ctl.Relay.Signal(pid, domain.PeerID(p.To), p.Payload)
}

func (ctl *Controller) handlePing(c *wsSignalConn) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: "pong",
	}
	ctl.sendJSON(c, resp)
}
