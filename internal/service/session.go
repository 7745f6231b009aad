package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/savings-service/internal/catalog"
	"github.com/guttosm/savings-service/internal/domain/model"
	"github.com/guttosm/savings-service/internal/metrics"
	"github.com/guttosm/savings-service/internal/service/cache"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionService owns calculator view sessions and applies their state transitions.
type SessionService interface {
	Create(ctx context.Context) (model.Session, error)
	Get(ctx context.Context, id string) (model.Session, error)
	ToggleTool(ctx context.Context, id string, toolID int) (model.Session, model.ToggleOutcome, error)
	SetHeadcount(ctx context.Context, id string, headcount int) (model.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionOption configures a sessionService.
type SessionOption func(*sessionService)

// WithDefaultHeadcount sets the headcount new sessions start with.
func WithDefaultHeadcount(headcount int) SessionOption {
	return func(s *sessionService) {
		s.defaultHeadcount = Quantize(headcount)
	}
}

// WithSessionStore injects the session store.
func WithSessionStore(store cache.Cache) SessionOption {
	return func(s *sessionService) {
		if store != nil {
			s.store = store
		}
	}
}

// WithClock overrides the time source used for session timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *sessionService) {
		if now != nil {
			s.now = now
		}
	}
}

type sessionService struct {
	mu               sync.Mutex
	catalog          *catalog.Catalog
	store            cache.Cache
	defaultHeadcount int
	now              func() time.Time
}

// NewSessionService creates a SessionService over the given catalog.
// Without WithSessionStore it keeps up to 10000 sessions for 30 minutes of inactivity.
func NewSessionService(cat *catalog.Catalog, opts ...SessionOption) SessionService {
	s := &sessionService{
		catalog:          cat,
		defaultHeadcount: DefaultHeadcount,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = NewShardedCache(10000, 30*time.Minute, 16)
	}
	return s
}

// Create opens a session with the default headcount and the catalog's default selection.
func (s *sessionService) Create(ctx context.Context) (model.Session, error) {
	if err := ctx.Err(); err != nil {
		return model.Session{}, err
	}

	ts := s.now()
	session := model.Session{
		ID:        uuid.New().String(),
		Headcount: s.defaultHeadcount,
		Tools:     s.catalog.Tools(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	s.store.Set(session.ID, session)
	metrics.RecordSessionEvent("created")
	s.reportStoreSize()
	return session, nil
}

// Get returns the session stored under id.
func (s *sessionService) Get(ctx context.Context, id string) (model.Session, error) {
	if err := ctx.Err(); err != nil {
		return model.Session{}, err
	}

	session, ok := s.store.Get(id)
	if !ok {
		return model.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// ToggleTool applies the selection toggle to the session. A toggle rejected
// by the floor rule leaves the session untouched and is not an error.
// Ids outside the catalog fail with ErrToolNotFound before the store is written.
func (s *sessionService) ToggleTool(ctx context.Context, id string, toolID int) (model.Session, model.ToggleOutcome, error) {
	if err := ctx.Err(); err != nil {
		return model.Session{}, model.ToggleOutcome{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store.Get(id)
	if !ok {
		return model.Session{}, model.ToggleOutcome{}, ErrSessionNotFound
	}
	if !s.catalog.Has(toolID) {
		metrics.RecordToolToggle("not_found")
		return session, model.ToggleOutcome{ActiveCount: session.ActiveToolCount()}, ErrToolNotFound
	}

	next, outcome, err := NewSelection(session.Tools).Toggle(toolID)
	if err != nil {
		metrics.RecordToolToggle("not_found")
		return session, outcome, err
	}
	if !outcome.Accepted {
		metrics.RecordToolToggle("rejected")
		return session, outcome, nil
	}

	session.Tools = next.Tools()
	session.UpdatedAt = s.now()
	s.store.Set(session.ID, session)

	metrics.RecordToolToggle("accepted")
	return session, outcome, nil
}

// SetHeadcount quantizes headcount and stores it on the session.
func (s *sessionService) SetHeadcount(ctx context.Context, id string, headcount int) (model.Session, error) {
	if err := ctx.Err(); err != nil {
		return model.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store.Get(id)
	if !ok {
		return model.Session{}, ErrSessionNotFound
	}

	session.Headcount = Quantize(headcount)
	session.UpdatedAt = s.now()
	s.store.Set(session.ID, session)
	return session, nil
}

// Delete tears the session down.
func (s *sessionService) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(id); !ok {
		return ErrSessionNotFound
	}
	s.store.Invalidate(id)
	metrics.RecordSessionEvent("deleted")
	s.reportStoreSize()
	return nil
}

func (s *sessionService) reportStoreSize() {
	if m, ok := s.store.(cache.CacheWithMetrics); ok {
		stats := m.Metrics()
		metrics.UpdateCacheMetrics(stats.Size, stats.Capacity)
	}
}
