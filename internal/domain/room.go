package domain

type RoomID string

// DefaultRoomID is the room joined when a client supplies no room id.
const DefaultRoomID RoomID = "default-room"

// ChatMessage is one entry of a room's append-only chat log. Data is
// stored and replayed verbatim.
type ChatMessage struct {
	Room   RoomID
	Sender string
	Data   string
	Origin PeerID
}
