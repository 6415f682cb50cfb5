package chat

import "sync"

// DefaultHistoryLimit es el máximo de mensajes por sesión si no se configura otro.
const DefaultHistoryLimit = 200

type sessionKey struct {
	userID string
	petID  string
}

// Sessions guarda el historial en memoria por (user, pet). Se pierde al
// reiniciar; cada sesión conserva solo los últimos limit mensajes.
type Sessions struct {
	mu    sync.RWMutex
	limit int
	byKey map[sessionKey][]Message
}

func NewSessions(limit int) *Sessions {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Sessions{limit: limit, byKey: make(map[sessionKey][]Message)}
}

func (s *Sessions) Append(userID, petID string, m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := sessionKey{userID, petID}
	msgs := append(s.byKey[k], m)
	if over := len(msgs) - s.limit; over > 0 {
		// copia para no retener el backing array viejo
		msgs = append([]Message(nil), msgs[over:]...)
	}
	s.byKey[k] = msgs
}

func (s *Sessions) History(userID, petID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message{}, s.byKey[sessionKey{userID, petID}]...)
}

func (s *Sessions) Clear(userID, petID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byKey, sessionKey{userID, petID})
}
