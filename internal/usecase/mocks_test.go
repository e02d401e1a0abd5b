package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/erdoganeray/travelApp/internal/domain"
)

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan domain.TravelPlan) (domain.TravelPlan, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(domain.TravelPlan), args.Error(1)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id string) (domain.TravelPlan, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TravelPlan), args.Error(1)
}

func (m *MockPlanRepository) ListByOwner(ctx context.Context, filter domain.PlanFilter) ([]domain.TravelPlan, int64, error) {
	args := m.Called(ctx, filter)
	plans, _ := args.Get(0).([]domain.TravelPlan)
	return plans, args.Get(1).(int64), args.Error(2)
}

func (m *MockPlanRepository) Update(ctx context.Context, plan domain.TravelPlan, previousUpdatedAt time.Time) error {
	args := m.Called(ctx, plan, previousUpdatedAt)
	return args.Error(0)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlanRepository) ListDueForTransition(ctx context.Context, status domain.PlanStatus, today time.Time, limit int) ([]domain.TravelPlan, error) {
	args := m.Called(ctx, status, today, limit)
	plans, _ := args.Get(0).([]domain.TravelPlan)
	return plans, args.Error(1)
}

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) List(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	cities, _ := args.Get(0).([]domain.City)
	return cities, args.Error(1)
}

func (m *MockCityRepository) GetByID(ctx context.Context, id string) (domain.City, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.City), args.Error(1)
}

func (m *MockCityRepository) Create(ctx context.Context, city domain.City) (domain.City, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(domain.City), args.Error(1)
}

func (m *MockCityRepository) Update(ctx context.Context, city domain.City) (domain.City, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(domain.City), args.Error(1)
}

func (m *MockCityRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Place, error) {
	args := m.Called(ctx, filter)
	places, _ := args.Get(0).([]domain.Place)
	return places, args.Error(1)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id string) (domain.Place, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Place), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Event, error) {
	args := m.Called(ctx, filter)
	events, _ := args.Get(0).([]domain.Event)
	return events, args.Error(1)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	args := m.Called(ctx, id, name)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) MergePreferences(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}
