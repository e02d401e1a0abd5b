package http_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erdoganeray/travelApp/internal/domain"
)

type memoryPlans struct {
	mu    sync.Mutex
	seq   int
	plans map[string]domain.TravelPlan
}

func newMemoryPlans() *memoryPlans {
	return &memoryPlans{plans: make(map[string]domain.TravelPlan)}
}

func (m *memoryPlans) Create(_ context.Context, plan domain.TravelPlan) (domain.TravelPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	plan.ID = fmt.Sprintf("%024x", m.seq)
	m.plans[plan.ID] = plan.Clone()
	return plan, nil
}

func (m *memoryPlans) GetByID(_ context.Context, id string) (domain.TravelPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	plan, ok := m.plans[id]
	if !ok {
		return domain.TravelPlan{}, domain.ErrNotFound
	}
	return plan.Clone(), nil
}

func (m *memoryPlans) ListByOwner(_ context.Context, filter domain.PlanFilter) ([]domain.TravelPlan, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.TravelPlan{}
	for _, p := range m.plans {
		if p.OwnerID == filter.OwnerID && (filter.Status == "" || p.Status == filter.Status) {
			out = append(out, p.Clone())
		}
	}
	return out, int64(len(out)), nil
}

func (m *memoryPlans) Update(_ context.Context, plan domain.TravelPlan, previousUpdatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.plans[plan.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if !stored.UpdatedAt.Equal(previousUpdatedAt) {
		return domain.ErrConflict
	}
	m.plans[plan.ID] = plan.Clone()
	return nil
}

func (m *memoryPlans) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.plans, id)
	return nil
}

func (m *memoryPlans) ListDueForTransition(context.Context, domain.PlanStatus, time.Time, int) ([]domain.TravelPlan, error) {
	return nil, nil
}

type memoryUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[uuid.UUID]*domain.User)}
}

func (m *memoryUsers) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrAlreadyExists
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memoryUsers) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	m.mu.Lock()
	if u, ok := m.users[id]; ok {
		u.Name = name
	}
	m.mu.Unlock()
	return m.GetByID(ctx, id)
}

func (m *memoryUsers) MergePreferences(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.User, error) {
	m.mu.Lock()
	if u, ok := m.users[id]; ok {
		merged := make(map[string]interface{}, len(u.Preferences)+len(patch))
		for k, v := range u.Preferences {
			merged[k] = v
		}
		for k, v := range patch {
			merged[k] = v
		}
		u.Preferences = merged
	}
	m.mu.Unlock()
	return m.GetByID(ctx, id)
}

type emptyCatalog struct{}

func (emptyCatalog) List(context.Context) ([]domain.City, error) { return []domain.City{}, nil }
func (emptyCatalog) GetByID(context.Context, string) (domain.City, error) {
	return domain.City{}, domain.ErrNotFound
}
func (emptyCatalog) Create(_ context.Context, c domain.City) (domain.City, error) {
	c.ID = "665f1c2b9d3e4a00000000c1"
	return c, nil
}
func (emptyCatalog) Update(_ context.Context, c domain.City) (domain.City, error) { return c, nil }
func (emptyCatalog) Delete(context.Context, string) error { return domain.ErrNotFound }

type emptyPlaces struct{}

func (emptyPlaces) List(context.Context, domain.CatalogFilter) ([]domain.Place, error) {
	return []domain.Place{}, nil
}
func (emptyPlaces) GetByID(context.Context, string) (domain.Place, error) {
	return domain.Place{}, domain.ErrNotFound
}

type emptyEvents struct{}

func (emptyEvents) List(context.Context, domain.CatalogFilter) ([]domain.Event, error) {
	return []domain.Event{}, nil
}
func (emptyEvents) GetByID(context.Context, string) (domain.Event, error) {
	return domain.Event{}, domain.ErrNotFound
}

type noCache struct{}

func (noCache) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (noCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (noCache) Delete(context.Context, string) error { return nil }
func (noCache) DeleteByPrefix(context.Context, string) error { return nil }

type recordingStream struct {
	mu     sync.Mutex
	events []domain.PlanEvent
}

func (s *recordingStream) PublishToStream(_ context.Context, _ string, data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := data.(domain.PlanEvent); ok {
		s.events = append(s.events, e)
	}
	return nil
}

type checker struct{ err error }

func (c checker) Health(context.Context) error { return c.err }
