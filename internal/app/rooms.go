package app

import (
	"sync"

	"github.com/quantummeet/meet-server/internal/core"
	"github.com/quantummeet/meet-server/internal/domain"
	"github.com/rs/zerolog/log"
)

// RoomRegistry owns room lifecycle: rooms appear on first join and are
// deleted the moment their membership empties. A room's chat log lives
// inside the room value, so deleting the room frees its history.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]core.RoomService
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[domain.RoomID]core.RoomService)}
}

func (f *RoomRegistry) GetOrCreate(id domain.RoomID) core.RoomService {
	f.mu.RLock()
	room, ok := f.rooms[id]
	f.mu.RUnlock()
	if ok {
		return room
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if room, ok = f.rooms[id]; ok {
		return room
	}
	room = core.NewRoom(id)
	f.rooms[id] = room
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room created")
	return room
}

func (f *RoomRegistry) Get(id domain.RoomID) (core.RoomService, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	room, ok := f.rooms[id]
	return room, ok
}

// RoomOf is the reverse lookup: it scans rooms for membership, used
// when an inbound event carries no room id.
func (f *RoomRegistry) RoomOf(pid domain.PeerID) (domain.RoomID, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for id, room := range f.rooms {
		if room.Contains(pid) {
			return id, true
		}
	}
	return "", false
}

// Affected describes one room a departing peer was removed from,
// with the members left behind to notify.
type Affected struct {
	Room      domain.RoomID
	Remaining []domain.PeerID
}

// LeaveAll removes pid from every room that contains it. A peer is
// expected to be in at most one room, but the scan stays defensive.
// Rooms emptied by the removal are deleted.
func (f *RoomRegistry) LeaveAll(pid domain.PeerID) []Affected {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Affected
	for id, room := range f.rooms {
		if !room.Remove(pid) {
			continue
		}
		if room.Empty() {
			delete(f.rooms, id)
			log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room deleted")
			out = append(out, Affected{Room: id})
			continue
		}
		out = append(out, Affected{Room: id, Remaining: room.Members()})
	}
	return out
}

func (f *RoomRegistry) List() []core.RoomInfo {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(f.rooms))
	for id, r := range f.rooms {
		out = append(out, core.RoomInfo{ID: id, MemberCount: r.MemberCount()})
	}
	return out
}
