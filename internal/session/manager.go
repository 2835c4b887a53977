package session

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/carbazaar/admin-gateway/internal/models"
)

var adminRoles = []string{"admin", "administrator"}

// IsAdminRole reports whether a role string grants access to the admin panel.
// The check is case-insensitive and exact.
func IsAdminRole(role string) bool {
	lowered := strings.ToLower(role)
	for _, allowed := range adminRoles {
		if lowered == allowed {
			return true
		}
	}
	return false
}

// Manager owns the persisted session for each signed-in administrator. All
// operations are best effort: storage failures degrade to "no session" instead
// of propagating, since a lost session only forces a fresh login.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Read returns the stored session, or nil when either entry is missing, the
// user document does not parse, or the stored role no longer passes the admin
// predicate. It never returns an error.
func (m *Manager) Read(ctx context.Context, sessionID string) *models.Session {
	if sessionID == "" {
		return nil
	}

	token, err := m.store.GetEntry(ctx, sessionID, FieldToken)
	if err != nil || token == "" {
		return nil
	}

	userRaw, err := m.store.GetEntry(ctx, sessionID, FieldUser)
	if err != nil || userRaw == "" {
		return nil
	}

	var user models.AdminUser
	if err := json.Unmarshal([]byte(userRaw), &user); err != nil {
		return nil
	}

	if !IsAdminRole(user.Role) {
		return nil
	}

	return &models.Session{Token: token, User: user}
}

// Persist writes both session entries. Side effect only; no validation.
func (m *Manager) Persist(ctx context.Context, sessionID string, sess models.Session) {
	userRaw, err := json.Marshal(sess.User)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to serialize session user")
		return
	}

	if err := m.store.SetEntry(ctx, sessionID, FieldToken, sess.Token, m.ttl); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to persist session token")
		return
	}
	if err := m.store.SetEntry(ctx, sessionID, FieldUser, string(userRaw), m.ttl); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to persist session user")
	}
}

// RefreshUser replaces the stored user document, keeping the token untouched.
// Used after a successful profile re-sync.
func (m *Manager) RefreshUser(ctx context.Context, sessionID string, user models.AdminUser) {
	userRaw, err := json.Marshal(user)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to serialize refreshed user")
		return
	}
	if err := m.store.SetEntry(ctx, sessionID, FieldUser, string(userRaw), m.ttl); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to refresh session user")
	}
}

// Clear removes both entries. Idempotent.
func (m *Manager) Clear(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := m.store.DeleteEntries(ctx, sessionID, FieldToken, FieldUser); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to clear session")
	}
}
