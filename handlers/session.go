package handlers

import "sync"

// sessionStore tracks, per login session, which basket the session is
// currently filling. This is the only session state the shell keeps; the
// services always receive customer and basket ids as explicit arguments.
type sessionStore struct {
	mu      sync.RWMutex
	baskets map[string]int
}

var sessions = &sessionStore{baskets: make(map[string]int)}

// BasketID returns the session's current basket id, or 0 when the session
// has none.
func (s *sessionStore) BasketID(sid string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baskets[sid]
}

func (s *sessionStore) SetBasket(sid string, bid int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baskets[sid] = bid
}

// ClearBasket forgets the session's basket reference. Called after checkout
// closes the basket and on logout; the next basket action starts fresh.
func (s *sessionStore) ClearBasket(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.baskets, sid)
}
