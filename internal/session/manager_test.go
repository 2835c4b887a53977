package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbazaar/admin-gateway/internal/models"
)

func TestIsAdminRole(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"administrator", true},
		{"Admin", true},
		{"ADMINISTRATOR", true},
		{"normaluser", false},
		{"superadmin", false},
		{"admin ", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsAdminRole(tc.role), "role %q", tc.role)
	}
}

func adminUser() models.AdminUser {
	return models.AdminUser{
		ID:    "u-1",
		Name:  "Admin One",
		Email: "admin@example.com",
		Role:  "admin",
	}
}

func TestManagerReadWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("persisted session reads back", func(t *testing.T) {
		m := NewManager(NewMemoryStore(), time.Hour)

		m.Persist(ctx, "sid", models.Session{Token: "bearer-xyz", User: adminUser()})

		sess := m.Read(ctx, "sid")
		require.NotNil(t, sess)
		assert.Equal(t, "bearer-xyz", sess.Token)
		assert.Equal(t, "admin@example.com", sess.User.Email)
	})

	t.Run("unknown session id reads as nil", func(t *testing.T) {
		m := NewManager(NewMemoryStore(), time.Hour)
		assert.Nil(t, m.Read(ctx, "missing"))
		assert.Nil(t, m.Read(ctx, ""))
	})

	t.Run("unparsable user document reads as nil", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewManager(store, time.Hour)

		require.NoError(t, store.SetEntry(ctx, "sid", FieldToken, "bearer", time.Hour))
		require.NoError(t, store.SetEntry(ctx, "sid", FieldUser, "{not json", time.Hour))

		assert.Nil(t, m.Read(ctx, "sid"))
	})

	t.Run("stored non-admin role reads as nil", func(t *testing.T) {
		m := NewManager(NewMemoryStore(), time.Hour)

		user := adminUser()
		user.Role = "normaluser"
		m.Persist(ctx, "sid", models.Session{Token: "bearer", User: user})

		assert.Nil(t, m.Read(ctx, "sid"))
	})

	t.Run("session with only one entry reads as nil", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewManager(store, time.Hour)

		require.NoError(t, store.SetEntry(ctx, "sid", FieldToken, "bearer", time.Hour))
		assert.Nil(t, m.Read(ctx, "sid"))
	})
}

func TestManagerDegradedStore(t *testing.T) {
	ctx := context.Background()

	store, mr := setupRedisStore(t)
	m := NewManager(store, time.Hour)
	m.Persist(ctx, "sid", models.Session{Token: "bearer", User: adminUser()})
	require.NotNil(t, m.Read(ctx, "sid"))

	// A dead store reads as no session, never as an error.
	mr.Close()
	assert.Nil(t, m.Read(ctx, "sid"))
}

func TestManagerRefreshUser(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), time.Hour)

	m.Persist(ctx, "sid", models.Session{Token: "bearer", User: adminUser()})

	refreshed := adminUser()
	refreshed.Name = "Renamed Admin"
	m.RefreshUser(ctx, "sid", refreshed)

	sess := m.Read(ctx, "sid")
	require.NotNil(t, sess)
	assert.Equal(t, "Renamed Admin", sess.User.Name)
	assert.Equal(t, "bearer", sess.Token, "token must survive a user refresh")
}

func TestManagerClear(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), time.Hour)

	m.Persist(ctx, "sid", models.Session{Token: "bearer", User: adminUser()})
	m.Clear(ctx, "sid")
	assert.Nil(t, m.Read(ctx, "sid"))

	// Idempotent.
	m.Clear(ctx, "sid")
	m.Clear(ctx, "")
}
