package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlbertoAlexandre/Apontador/internal/model"
)

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(time.Hour)

	user := model.User{
		ID:           4,
		Username:     "adm",
		Professional: model.Professional{Name: "Administrator"},
		Permission:   model.AllPermissions(4),
	}

	token, err := m.Create(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, ok := m.Get(token)
	require.True(t, ok)
	assert.Equal(t, int64(4), session.UserID)
	assert.Equal(t, "Administrator", session.Name)
	assert.True(t, session.Permissions.Dashboard)

	// Tokens are unique per login.
	other, err := m.Create(user)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestManager_DeleteAndUnknown(t *testing.T) {
	m := NewManager(time.Hour)

	token, err := m.Create(model.User{ID: 1, Username: "joao"})
	require.NoError(t, err)

	m.Delete(token)
	_, ok := m.Get(token)
	assert.False(t, ok)

	_, ok = m.Get("no-such-token")
	assert.False(t, ok)
}

func TestManager_Refresh(t *testing.T) {
	m := NewManager(time.Hour)

	user := model.User{ID: 2, Username: "maria"}
	token, err := m.Create(user)
	require.NoError(t, err)

	perms := model.Permission{UserID: 2, Dashboard: true, DailyReport: true}
	m.Refresh(2, perms)

	session, ok := m.Get(token)
	require.True(t, ok)
	assert.True(t, session.Permissions.Dashboard)
	assert.True(t, session.Permissions.DailyReport)
	assert.False(t, session.Permissions.Admin)
}
