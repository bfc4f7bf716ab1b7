package funnel

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/domain"
)

// sessionTTL is how long an untouched session survives. Expired sessions are
// swept opportunistically on creation.
const sessionTTL = 30 * time.Minute

// Session groups the per-visitor stateful widgets.
type Session struct {
	ID       uuid.UUID
	TripForm *TripForm
	Browser  *ExcursionBrowser

	lastSeen time.Time
}

// Manager owns the live sessions. It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	quoter    Quoter
	submitter TaxiSubmitter
	reader    CatalogReader
	logger    *zap.Logger
	now       func() time.Time
}

// NewManager creates an empty session manager.
func NewManager(quoter Quoter, submitter TaxiSubmitter, reader CatalogReader, logger *zap.Logger) *Manager {
	return &Manager{
		sessions:  make(map[uuid.UUID]*Session),
		quoter:    quoter,
		submitter: submitter,
		reader:    reader,
		logger:    logger,
		now:       time.Now,
	}
}

// Create starts a fresh session and returns it.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked()

	session := &Session{
		ID:       uuid.New(),
		TripForm: NewTripForm(m.quoter, m.submitter, m.logger),
		Browser:  NewExcursionBrowser(m.reader, m.logger),
		lastSeen: m.now(),
	}
	m.sessions[session.ID] = session

	m.logger.Debug("session created",
		zap.String("session_id", session.ID.String()),
		zap.Int("live_sessions", len(m.sessions)),
	)
	return session
}

// Get returns the session for the given ID, refreshing its idle timer.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.NewNotFoundError("session", id.String())
	}
	session.lastSeen = m.now()
	return session, nil
}

// sweepLocked evicts sessions idle past the TTL. Caller holds m.mu.
func (m *Manager) sweepLocked() {
	cutoff := m.now().Add(-sessionTTL)
	for id, session := range m.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
