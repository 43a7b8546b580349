package app

import (
	"slices"
	"testing"

	"github.com/quantummeet/meet-server/internal/domain"
)

func TestRoomOfScansRooms(t *testing.T) {
	f := NewRoomRegistry()
	f.GetOrCreate("r1").Add("a")
	f.GetOrCreate("r2").Add("b")

	if got, ok := f.RoomOf("a"); !ok || got != "r1" {
		t.Errorf("RoomOf(a) = %q, %v, want r1", got, ok)
	}
	if got, ok := f.RoomOf("b"); !ok || got != "r2" {
		t.Errorf("RoomOf(b) = %q, %v, want r2", got, ok)
	}
	if _, ok := f.RoomOf("ghost"); ok {
		t.Error("RoomOf(ghost) found a room")
	}
}

// A peer is expected to be in at most one room, but cleanup still
// sweeps every room it can be found in.
func TestLeaveAllSweepsEveryRoom(t *testing.T) {
	f := NewRoomRegistry()
	f.GetOrCreate("r1").Add("a")
	f.GetOrCreate("r1").Add("b")
	f.GetOrCreate("r2").Add("a")

	affected := f.LeaveAll("a")
	if len(affected) != 2 {
		t.Fatalf("affected rooms = %d, want 2", len(affected))
	}

	var sawR1, sawR2 bool
	for _, aff := range affected {
		switch aff.Room {
		case "r1":
			sawR1 = true
			if !slices.Equal(aff.Remaining, []domain.PeerID{"b"}) {
				t.Errorf("r1 remaining = %v, want [b]", aff.Remaining)
			}
		case "r2":
			sawR2 = true
			if len(aff.Remaining) != 0 {
				t.Errorf("r2 remaining = %v, want empty", aff.Remaining)
			}
		}
	}
	if !sawR1 || !sawR2 {
		t.Fatalf("affected = %v, want r1 and r2", affected)
	}

	// r2 emptied and must be gone; r1 survives with b.
	if _, ok := f.Get("r2"); ok {
		t.Error("empty room r2 not deleted")
	}
	if _, ok := f.Get("r1"); !ok {
		t.Error("occupied room r1 deleted")
	}
}

func TestLeaveAllUnknownPeerIsNoop(t *testing.T) {
	f := NewRoomRegistry()
	f.GetOrCreate("r1").Add("a")

	if affected := f.LeaveAll("ghost"); len(affected) != 0 {
		t.Fatalf("LeaveAll(ghost) = %v, want none", affected)
	}
	if got := len(f.List()); got != 1 {
		t.Fatalf("rooms = %d, want 1", got)
	}
}

func TestGetOrCreateReturnsSameRoom(t *testing.T) {
	f := NewRoomRegistry()
	r1 := f.GetOrCreate("r1")
	r1.Add("a")
	if got := f.GetOrCreate("r1"); got.MemberCount() != 1 {
		t.Fatal("GetOrCreate returned a fresh room for an existing id")
	}
}
