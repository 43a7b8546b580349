package core

import (
	"slices"
	"sync"

	"github.com/quantummeet/meet-server/internal/domain"
	"github.com/rs/zerolog/log"
)

// roomImpl is a threadsafe in-memory room. Membership keeps join order;
// the chat log keeps arrival order. It never closes adapter-owned
// resources.
type roomImpl struct {
	id domain.RoomID

	mu      sync.RWMutex
	members []domain.PeerID
	history []domain.ChatMessage
}

func NewRoom(id domain.RoomID) RoomService {
	return &roomImpl{id: id}
}

func (r *roomImpl) ID() domain.RoomID { return r.id }

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *roomImpl) Members() []domain.PeerID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.members)
}

func (r *roomImpl) Contains(pid domain.PeerID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.members, pid)
}

func (r *roomImpl) Empty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members) == 0
}

func (r *roomImpl) Add(pid domain.PeerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.members, pid) {
		return false
	}
	r.members = append(r.members, pid)
	log.Info().Str("module", "core.room").Str("room", string(r.id)).Str("pid", string(pid)).Msg("member added")
	return true
}

func (r *roomImpl) Remove(pid domain.PeerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.Index(r.members, pid)
	if i < 0 {
		return false
	}
	r.members = slices.Delete(r.members, i, i+1)
	log.Info().Str("module", "core.room").Str("room", string(r.id)).Str("pid", string(pid)).Msg("member removed")
	return true
}

func (r *roomImpl) Append(msg domain.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, msg)
}

func (r *roomImpl) History() []domain.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.history)
}
