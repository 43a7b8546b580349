package app

import (
	"encoding/json"

	"github.com/quantummeet/meet-server/internal/core"
	"github.com/quantummeet/meet-server/internal/domain"
)

// Outbound wire events. Each carries a fixed schema behind a "type"
// discriminator; the signal adapter decodes the inbound counterparts.

type existingUsersEvent struct {
	Type  string         `json:"type"`
	Users []core.PeerDTO `json:"users"`
}

type userJoinedEvent struct {
	Type        string        `json:"type"`
	ID          domain.PeerID `json:"id"`
	DisplayName string        `json:"displayName"`
}

type signalEvent struct {
	Type    string          `json:"type"`
	From    domain.PeerID   `json:"from"`
	Payload json.RawMessage `json:"payload"`
}

type chatMessageEvent struct {
	Type   string        `json:"type"`
	Data   string        `json:"data"`
	Sender string        `json:"sender"`
	From   domain.PeerID `json:"from"`
}

type captionEvent struct {
	Type   string `json:"type"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type handRaiseEvent struct {
	Type   string `json:"type"`
	Sender string `json:"sender"`
	Raised bool   `json:"raised"`
}

type userLeftEvent struct {
	Type string        `json:"type"`
	ID   domain.PeerID `json:"id"`
}
