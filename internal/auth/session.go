package auth

import (
	"sync"

	"category_admin/internal/domain"
)

// Session holds the current identity token and its decoded payload. It is
// safe for concurrent use and satisfies clients.TokenSource.
type Session struct {
	mu       sync.RWMutex
	token    string
	identity *domain.Identity
}

func NewSession() *Session {
	return &Session{}
}

// Set decodes token and makes it current. On a decode failure the session
// is left unchanged.
func (s *Session) Set(token string) error {
	identity, err := DecodeIdentity(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.mu.Unlock()
	return nil
}

// Adopt makes token current even when it does not decode. The token is
// still sent as the bearer credential and Identity reports nil. The decode
// error, if any, is returned for the caller to log.
func (s *Session) Adopt(token string) error {
	identity, err := DecodeIdentity(token)

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.mu.Unlock()
	return err
}

func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.mu.Unlock()
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns a copy of the decoded payload, or nil when no one is
// logged in.
func (s *Session) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}
