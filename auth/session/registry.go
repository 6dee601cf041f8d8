package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"

	"clubmanager/auth/users"
)

const tokenLen = 32 // 256 bits

// Registry maps opaque session tokens to authenticated users. It lives in
// process memory only: a restart invalidates every session. All access goes
// through a single lock so Create/Resolve/Revoke are linearizable.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]users.User
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]users.User),
	}
}

// Create generates a new token for the user and stores the mapping.
// The token is the sole credential and must only travel in an http-only
// cookie.
func (r *Registry) Create(user users.User) (string, error) {
	buf := make([]byte, tokenLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	r.mu.Lock()
	r.sessions[token] = user
	r.mu.Unlock()
	return token, nil
}

// Resolve returns the user a token was issued to. Empty, unknown and
// malformed tokens all resolve to absent, never to an error.
func (r *Registry) Resolve(token string) (users.User, bool) {
	if token == "" {
		return users.User{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.sessions[token]
	return user, ok
}

// Revoke drops the mapping. Revoking an unknown token is a no-op.
func (r *Registry) Revoke(token string) {
	if token == "" {
		return
	}
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}
