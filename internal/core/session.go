package core

import "github.com/quantummeet/meet-server/internal/domain"

// peerSession implements PeerSession by pairing identity + transport.
type peerSession struct {
	peer *domain.Peer
	conn SignalConnection
}

func NewPeerSession(peer *domain.Peer, conn SignalConnection) PeerSession {
	return &peerSession{peer: peer, conn: conn}
}

func (s *peerSession) Peer() *domain.Peer       { return s.peer }
func (s *peerSession) Signal() SignalConnection { return s.conn }
