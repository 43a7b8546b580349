// Package domain contains entity without logic, just meta-data
package domain

import "fmt"

const (
	MaxDisplayNameLen = 36

	// FallbackDisplayName is used when resolving a peer whose name was
	// never recorded.
	FallbackDisplayName = "Peer"
)

// PeerID identifies one live connection. It is ephemeral: minted on
// connect, gone on disconnect.
type PeerID string

type Peer struct {
	ID          PeerID `json:"id"`
	DisplayName string `json:"displayName"`
}

// DefaultDisplayName derives a placeholder name from the connection id.
func DefaultDisplayName(id PeerID) string {
	s := string(id)
	if len(s) > 5 {
		s = s[:5]
	}
	return fmt.Sprintf("User-%s", s)
}
