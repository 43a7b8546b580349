package app

import (
	"context"
	"sync"

	"github.com/quantummeet/meet-server/internal/core"
	"github.com/quantummeet/meet-server/internal/domain"
	"github.com/rs/zerolog/log"
)

type sessionEntry struct {
	Session core.PeerSession
	Cancel  context.CancelFunc
}

// Registry is the presence directory: it binds connection ids to live
// sessions and records each peer's chosen display name.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.PeerID]*sessionEntry
	names    map[domain.PeerID]string
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.PeerID]*sessionEntry),
		names:    make(map[domain.PeerID]string),
	}
}

func (r *Registry) BindSignal(pid domain.PeerID, sess core.PeerSession, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[pid] = &sessionEntry{Session: sess, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("pid", string(pid)).Msg("bound signal")
}

func (r *Registry) GetSession(pid domain.PeerID) (core.PeerSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[pid]; ok {
		return e.Session, true
	}
	return nil, false
}

// SetDisplayName records the peer's name, falling back to a generated
// placeholder when blank. Overlong names are truncated.
func (r *Registry) SetDisplayName(pid domain.PeerID, name string) {
	if name == "" {
		name = domain.DefaultDisplayName(pid)
	}
	if len(name) > domain.MaxDisplayNameLen {
		name = name[:domain.MaxDisplayNameLen]
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[pid] = name
}

// DisplayName resolves a peer's recorded name. Unknown peers resolve to
// a generic placeholder rather than an error; partial state must not
// break fan-out.
func (r *Registry) DisplayName(pid domain.PeerID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.names[pid]; ok {
		return name
	}
	return domain.FallbackDisplayName
}

// Unbind drops the session and presence entries for pid, canceling the
// session context if one was bound. Safe to call for unknown ids.
func (r *Registry) Unbind(pid domain.PeerID) {
	r.mu.Lock()
	e, ok := r.sessions[pid]
	delete(r.sessions, pid)
	delete(r.names, pid)
	r.mu.Unlock()
	if ok && e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("pid", string(pid)).Msg("unbind session")
}
