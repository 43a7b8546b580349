package app

import (
	"encoding/json"
	"errors"

	"github.com/quantummeet/meet-server/internal/core"
	"github.com/quantummeet/meet-server/internal/domain"
	"github.com/quantummeet/meet-server/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Relay brokers every room-scoped event: join fan-out, chat echo and
// replay, captions, hand-raise, targeted signaling and disconnect
// cleanup. Delivery is fire-and-forget: an undeliverable frame is
// dropped and counted, never retried, and no operation surfaces an
// error to the sender.
type Relay struct {
	Registry *Registry
	Rooms    *RoomRegistry
}

func NewRelay() *Relay {
	return &Relay{
		Registry: NewRegistry(),
		Rooms:    NewRoomRegistry(),
	}
}

// Join registers the peer in the room (created on first join, fallback
// id when blank), records the display name, returns the existing-member
// list to the joiner, notifies each existing member, then replays the
// room's chat history to the joiner only. Re-joining the same room is a
// membership no-op.
func (r *Relay) Join(pid domain.PeerID, roomID domain.RoomID, displayName string) {
	if roomID == "" {
		roomID = domain.DefaultRoomID
	}
	r.Registry.SetDisplayName(pid, displayName)

	room := r.Rooms.GetOrCreate(roomID)
	room.Add(pid)
	log.Info().Str("module", "app.relay").Str("pid", string(pid)).Str("room", string(roomID)).Msg("join")

	existing := make([]core.PeerDTO, 0)
	for _, mid := range room.Members() {
		if mid == pid {
			continue
		}
		existing = append(existing, core.PeerDTO{ID: mid, DisplayName: r.Registry.DisplayName(mid)})
	}
	r.send(pid, existingUsersEvent{Type: "existing-users", Users: existing})

	joined := userJoinedEvent{
		Type:        "user-joined",
		ID:          pid,
		DisplayName: r.Registry.DisplayName(pid),
	}
	for _, peer := range existing {
		r.send(peer.ID, joined)
	}

	for _, msg := range room.History() {
		r.send(pid, chatMessageEvent{
			Type:   "chat-message",
			Data:   msg.Data,
			Sender: msg.Sender,
			From:   msg.Origin,
		})
	}
}

// Signal forwards an opaque negotiation payload to exactly one target.
// The payload is never inspected; an unknown target is a silent,
// counted drop.
func (r *Relay) Signal(from, to domain.PeerID, payload json.RawMessage) {
	if _, ok := r.Registry.GetSession(to); !ok {
		metrics.Drop(metrics.ReasonUnknownTarget)
		log.Warn().Str("module", "app.relay").Str("from", string(from)).Str("to", string(to)).Msg("signal target unknown")
		return
	}
	r.send(to, signalEvent{Type: "signal", From: from, Payload: payload})
}

// Chat resolves the sender's room, appends to its log and echoes the
// message to every member including the sender. A sender in no room is
// discarded silently.
func (r *Relay) Chat(from domain.PeerID, data, sender string) {
	roomID, ok := r.Rooms.RoomOf(from)
	if !ok {
		metrics.Drop(metrics.ReasonNoRoom)
		log.Warn().Str("module", "app.relay").Str("pid", string(from)).Msg("chat from peer in no room")
		return
	}
	room, ok := r.Rooms.Get(roomID)
	if !ok {
		return
	}
	room.Append(domain.ChatMessage{Room: roomID, Sender: sender, Data: data, Origin: from})

	ev := chatMessageEvent{Type: "chat-message", Data: data, Sender: sender, From: from}
	for _, mid := range room.Members() {
		r.send(mid, ev)
	}
}

// Caption broadcasts a live caption to the room, excluding the sender.
// The room id is trusted as supplied; membership of the sender is not
// verified.
func (r *Relay) Caption(from domain.PeerID, roomID domain.RoomID, text, sender string) {
	if roomID == "" || text == "" {
		metrics.Drop(metrics.ReasonMissingFields)
		return
	}
	room, ok := r.Rooms.Get(roomID)
	if !ok {
		return
	}
	ev := captionEvent{Type: "caption", Sender: sender, Text: text}
	for _, mid := range room.Members() {
		if mid == from {
			continue
		}
		r.send(mid, ev)
	}
}

// HandRaise broadcasts the raised/lowered flag to the room, excluding
// the sender. The flag is transient: it is not written back into the
// presence directory.
func (r *Relay) HandRaise(from domain.PeerID, roomID domain.RoomID, sender string, raised bool) {
	room, ok := r.Rooms.Get(roomID)
	if !ok {
		return
	}
	ev := handRaiseEvent{Type: "hand-raise", Sender: sender, Raised: raised}
	for _, mid := range room.Members() {
		if mid == from {
			continue
		}
		r.send(mid, ev)
	}
}

// Disconnect unwinds every trace of the connection: it leaves all rooms
// (deleting any that empty), notifies the peers left behind, and drops
// the presence entry. Idempotent for unknown ids.
func (r *Relay) Disconnect(pid domain.PeerID) {
	affected := r.Rooms.LeaveAll(pid)
	for _, aff := range affected {
		ev := userLeftEvent{Type: "user-left", ID: pid}
		for _, mid := range aff.Remaining {
			r.send(mid, ev)
		}
	}
	r.Registry.Unbind(pid)
	log.Info().Str("module", "app.relay").Str("pid", string(pid)).Int("rooms", len(affected)).Msg("disconnect reconciled")
}

func (r *Relay) send(pid domain.PeerID, v any) {
	sess, ok := r.Registry.GetSession(pid)
	if !ok {
		metrics.Drop(metrics.ReasonUnknownTarget)
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.relay").Msg("marshal event")
		return
	}
	if err := sess.Signal().TrySend(core.Frame(b)); err != nil {
		switch {
		case errors.Is(err, core.ErrBackpressure):
			metrics.Drop(metrics.ReasonBackpressure)
		default:
			metrics.Drop(metrics.ReasonClosedConn)
		}
		log.Warn().Err(err).Str("module", "app.relay").Str("pid", string(pid)).Msg("frame dropped")
	}
}
