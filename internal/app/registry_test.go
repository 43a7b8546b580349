package app

import (
	"context"
	"strings"
	"testing"

	"github.com/quantummeet/meet-server/internal/core"
	"github.com/quantummeet/meet-server/internal/domain"
)

func TestDisplayNameResolution(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		pid  domain.PeerID
		set  string
		want string
	}{
		{name: "recorded name", pid: "p1", set: "alice", want: "alice"},
		{name: "blank name gets placeholder", pid: "p2345678", set: "", want: "User-p2345"},
		{name: "overlong name truncated", pid: "p3", set: strings.Repeat("x", 50), want: strings.Repeat("x", domain.MaxDisplayNameLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.SetDisplayName(tt.pid, tt.set)
			if got := r.DisplayName(tt.pid); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayNameUnknownPeerFallsBack(t *testing.T) {
	r := NewRegistry()
	if got := r.DisplayName("nobody"); got != domain.FallbackDisplayName {
		t.Fatalf("DisplayName() = %q, want %q", got, domain.FallbackDisplayName)
	}
}

func TestUnbindRemovesSessionAndPresence(t *testing.T) {
	r := NewRegistry()
	conn := &fakeConn{}
	canceled := false
	cancel := context.CancelFunc(func() { canceled = true })

	r.BindSignal("p1", core.NewPeerSession(&domain.Peer{ID: "p1"}, conn), cancel)
	r.SetDisplayName("p1", "alice")

	r.Unbind("p1")

	if _, ok := r.GetSession("p1"); ok {
		t.Error("session still bound after Unbind")
	}
	if got := r.DisplayName("p1"); got != domain.FallbackDisplayName {
		t.Errorf("presence entry survived Unbind: %q", got)
	}
	if !canceled {
		t.Error("session context not canceled")
	}

	// Second unbind of an unknown id is a no-op.
	r.Unbind("p1")
}
