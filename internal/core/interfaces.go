package core

import (
	"errors"

	"github.com/quantummeet/meet-server/internal/domain"
)

// Frame is a marshaled wire event ready for delivery.
type Frame []byte

var (
	ErrBackpressure = errors.New("backpressure")
	ErrConnClosed   = errors.New("connection closed")
)

// SignalConnection abstracts for a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// PeerSession binds a peer's identity and its transport endpoint.
// This is what the registry stores and the relay fans out to.
type PeerSession interface {
	Peer() *domain.Peer
	Signal() SignalConnection
}

// PeerDTO is a read-only view for the wire (no transport fields).
type PeerDTO struct {
	ID          domain.PeerID `json:"id"`
	DisplayName string        `json:"displayName"`
}

// RoomService is the core-facing API of a room. It owns the ordered
// membership set and the chat log but never touches transport
// resources; delivery addressing stays with the relay.
type RoomService interface {
	ID() domain.RoomID
	MemberCount() int
	Members() []domain.PeerID
	Contains(pid domain.PeerID) bool
	Empty() bool

	// Add appends pid to the membership unless already present.
	// Reports whether the peer was newly added.
	Add(pid domain.PeerID) bool
	Remove(pid domain.PeerID) bool

	Append(msg domain.ChatMessage)
	History() []domain.ChatMessage
}

type RoomInfo struct {
	ID          domain.RoomID `json:"id"`
	MemberCount int           `json:"member_count"`
}
