package funnel

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/domain"
)

func newTestManager() *Manager {
	return NewManager(&fakeQuoter{}, &fakeSubmitter{}, newTestReader(), zap.NewNop())
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newTestManager()

	session := m.Create()
	require.NotNil(t, session.TripForm)
	require.NotNil(t, session.Browser)

	got, err := m.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestManager_GetUnknownSession(t *testing.T) {
	m := newTestManager()

	_, err := m.Get(uuid.New())
	require.Error(t, err)
	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, appErr.Kind)
}

func TestManager_SweepsExpiredSessions(t *testing.T) {
	m := newTestManager()
	now := time.Now()
	m.now = func() time.Time { return now }

	stale := m.Create()
	// Time passes beyond the TTL; the next creation sweeps.
	now = now.Add(sessionTTL + time.Minute)
	fresh := m.Create()

	_, err := m.Get(stale.ID)
	assert.Error(t, err, "expired session should have been evicted")

	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestManager_AccessKeepsSessionAlive(t *testing.T) {
	m := newTestManager()
	now := time.Now()
	m.now = func() time.Time { return now }

	session := m.Create()

	// Touch the session halfway through the TTL, then let the original
	// deadline pass.
	now = now.Add(sessionTTL / 2)
	_, err := m.Get(session.ID)
	require.NoError(t, err)

	now = now.Add(sessionTTL/2 + time.Minute)
	m.Create() // triggers a sweep

	_, err = m.Get(session.ID)
	assert.NoError(t, err, "recently touched session must survive the sweep")
}
