package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

// Session is the server-side state bound to one login token.
type Session struct {
	UserID      int64
	Username    string
	Name        string
	Permissions model.Permission
}

// Manager issues and resolves opaque session tokens. Sessions live in an
// in-process cache and expire after the configured TTL of inactivity.
type Manager struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewManager creates a session manager with the given TTL.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// Create issues a fresh random token for the authenticated user.
func (m *Manager) Create(user model.User) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)
	m.cache.Set(token, Session{
		UserID:      user.ID,
		Username:    user.Username,
		Name:        user.Professional.Name,
		Permissions: user.Permission,
	}, m.ttl)
	return token, nil
}

// Get resolves a token, sliding its expiry on every hit.
func (m *Manager) Get(token string) (Session, bool) {
	v, ok := m.cache.Get(token)
	if !ok {
		return Session{}, false
	}
	session := v.(Session)
	m.cache.Set(token, session, m.ttl)
	return session, true
}

// Delete invalidates a token. Unknown tokens are a no-op.
func (m *Manager) Delete(token string) {
	m.cache.Delete(token)
}

// Refresh replaces the stored permissions for every live session of the
// user, so permission edits take effect without a new login.
func (m *Manager) Refresh(userID int64, perms model.Permission) {
	for token, item := range m.cache.Items() {
		session, ok := item.Object.(Session)
		if !ok || session.UserID != userID {
			continue
		}
		session.Permissions = perms
		m.cache.Set(token, session, m.ttl)
	}
}
