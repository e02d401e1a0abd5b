package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
	"github.com/erdoganeray/travelApp/internal/usecase"
)

var planNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

const newPlanBody = `{
	"title": "Cappadocia",
	"destinationCityId": "665f1c2b9d3e4a00000000c1",
	"startDate": "2025-06-11",
	"endDate": "2025-06-14",
	"budget": {"amount": 800, "currency": "try"},
	"preferences": {"pace": "relaxed", "interests": ["nature"], "transportation": ["rental"]}
}`

func fixedClock() time.Time { return planNow }

func savedPlan() domain.TravelPlan {
	return domain.TravelPlan{
		ID:                "665f1c2b9d3e4a0012345678",
		OwnerID:           "u1",
		Title:             "Cappadocia",
		DestinationCityID: "665f1c2b9d3e4a00000000c1",
		StartDate:         time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		Budget:            domain.Budget{Amount: 800, Currency: domain.CurrencyTRY},
		DayPlans:          []domain.DayPlan{},
		Status:            domain.StatusDraft,
		Preferences: domain.Preferences{
			Pace:           domain.PaceRelaxed,
			Interests:      []domain.Interest{domain.InterestNature},
			Transportation: []domain.Transportation{domain.TransportationRental},
		},
		CreatedAt: planNow.Add(-time.Hour),
		UpdatedAt: planNow.Add(-time.Hour),
	}
}

func newPlanUseCase() (*usecase.PlanUseCase, *MockPlanRepository, *MockStreamRepository) {
	plans := new(MockPlanRepository)
	streams := new(MockStreamRepository)
	return usecase.NewPlanUseCase(plans, streams, fixedClock, zap.NewNop()), plans, streams
}

func violationKind(t *testing.T, err error) validator.Kind {
	t.Helper()
	var verr *validator.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Kind()
}

func eventOfType(typ domain.PlanEventType) interface{} {
	return mock.MatchedBy(func(e domain.PlanEvent) bool { return e.Type == typ })
}

func TestPlanUseCase_Create(t *testing.T) {
	ctx := context.Background()
	caller := domain.Identity{ID: "u1", Email: "u1@example.com"}

	t.Run("stores draft and publishes event", func(t *testing.T) {
		uc, plans, streams := newPlanUseCase()

		plans.On("Create", ctx, mock.MatchedBy(func(p domain.TravelPlan) bool {
			return p.OwnerID == "u1" && p.Status == domain.StatusDraft && p.Budget.Currency == domain.CurrencyTRY
		})).Return(savedPlan(), nil)
		streams.On("PublishToStream", ctx, domain.StreamPlanEvents, eventOfType(domain.PlanCreated)).Return(nil)

		plan, err := uc.Create(ctx, caller, []byte(newPlanBody))

		require.NoError(t, err)
		assert.Equal(t, "665f1c2b9d3e4a0012345678", plan.ID)
		plans.AssertExpectations(t)
		streams.AssertExpectations(t)
	})

	t.Run("publish failure is not returned", func(t *testing.T) {
		uc, plans, streams := newPlanUseCase()

		plans.On("Create", ctx, mock.Anything).Return(savedPlan(), nil)
		streams.On("PublishToStream", ctx, domain.StreamPlanEvents, mock.Anything).Return(errors.New("redis down"))

		_, err := uc.Create(ctx, caller, []byte(newPlanBody))

		assert.NoError(t, err)
	})

	t.Run("invalid plan never reaches the store", func(t *testing.T) {
		uc, plans, streams := newPlanUseCase()

		_, err := uc.Create(ctx, caller, []byte(`{"title":"x"}`))

		assert.Equal(t, validator.KindMissingField, violationKind(t, err))
		plans.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		streams.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		uc, _, _ := newPlanUseCase()

		_, err := uc.Create(ctx, caller, []byte(`not json`))

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID_REQUEST", appErr.Code)
	})

	t.Run("store error", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("Create", ctx, mock.Anything).Return(domain.TravelPlan{}, errors.New("mongo down"))

		_, err := uc.Create(ctx, caller, []byte(newPlanBody))

		assert.EqualError(t, err, "mongo down")
	})
}

func TestPlanUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, "p1").Return(savedPlan(), nil)

		plan, err := uc.Get(ctx, domain.Identity{ID: "u1"}, "p1")

		require.NoError(t, err)
		assert.Equal(t, "Cappadocia", plan.Title)
	})

	t.Run("other user", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, "p1").Return(savedPlan(), nil)

		_, err := uc.Get(ctx, domain.Identity{ID: "u2"}, "p1")

		assert.Equal(t, validator.KindOwnershipViolation, violationKind(t, err))
	})

	t.Run("missing", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, "p1").Return(domain.TravelPlan{}, domain.ErrNotFound)

		_, err := uc.Get(ctx, domain.Identity{ID: "u1"}, "p1")

		assert.Equal(t, apperrors.ErrPlanNotFound, err)
	})
}

func TestPlanUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("scoped to caller", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("ListByOwner", ctx, domain.PlanFilter{OwnerID: "u1", Status: domain.StatusDraft, Limit: 20}).
			Return([]domain.TravelPlan{savedPlan()}, int64(1), nil)

		resp, err := uc.List(ctx, domain.Identity{ID: "u1"}, domain.PlanFilter{OwnerID: "u9", Status: domain.StatusDraft, Limit: 20})

		require.NoError(t, err)
		assert.Len(t, resp.Plans, 1)
		assert.Equal(t, int64(1), resp.Total)
		plans.AssertExpectations(t)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()

		_, err := uc.List(ctx, domain.Identity{ID: "u1"}, domain.PlanFilter{Status: "archived"})

		assert.Equal(t, validator.KindFormatViolation, violationKind(t, err))
		plans.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
	})
}

func TestPlanUseCase_Update(t *testing.T) {
	ctx := context.Background()
	stored := savedPlan()

	t.Run("partial update with status step", func(t *testing.T) {
		uc, plans, streams := newPlanUseCase()
		plans.On("GetByID", ctx, stored.ID).Return(stored, nil)
		plans.On("Update", ctx, mock.MatchedBy(func(p domain.TravelPlan) bool {
			return p.Status == domain.StatusPlanned && p.Title == "Cappadocia by balloon" && p.UpdatedAt.Equal(planNow)
		}), stored.UpdatedAt).Return(nil)
		streams.On("PublishToStream", ctx, domain.StreamPlanEvents, eventOfType(domain.PlanUpdated)).Return(nil)
		streams.On("PublishToStream", ctx, domain.StreamPlanEvents, mock.MatchedBy(func(e domain.PlanEvent) bool {
			return e.Type == domain.PlanStatusChanged && e.PreviousStatus == domain.StatusDraft
		})).Return(nil)

		plan, err := uc.Update(ctx, domain.Identity{ID: "u1"}, stored.ID, []byte(`{"title":"Cappadocia by balloon","status":"planned"}`))

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPlanned, plan.Status)
		assert.Equal(t, stored.EndDate, plan.EndDate)
		plans.AssertExpectations(t)
		streams.AssertExpectations(t)
	})

	t.Run("other user cannot change anything", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, stored.ID).Return(stored, nil)

		_, err := uc.Update(ctx, domain.Identity{ID: "u2"}, stored.ID, []byte(`{"title":"Hijacked"}`))

		assert.Equal(t, validator.KindOwnershipViolation, violationKind(t, err))
		plans.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skipping a status", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, stored.ID).Return(stored, nil)

		_, err := uc.Update(ctx, domain.Identity{ID: "u1"}, stored.ID, []byte(`{"status":"completed"}`))

		assert.Equal(t, validator.KindInvalidTransition, violationKind(t, err))
		plans.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent modification", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, stored.ID).Return(stored, nil)
		plans.On("Update", ctx, mock.Anything, stored.UpdatedAt).Return(domain.ErrConflict)

		_, err := uc.Update(ctx, domain.Identity{ID: "u1"}, stored.ID, []byte(`{"title":"Again"}`))

		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestPlanUseCase_ChangeStatus(t *testing.T) {
	ctx := context.Background()
	stored := savedPlan()

	t.Run("one step forward", func(t *testing.T) {
		uc, plans, streams := newPlanUseCase()
		plans.On("GetByID", ctx, stored.ID).Return(stored, nil)
		plans.On("Update", ctx, mock.MatchedBy(func(p domain.TravelPlan) bool {
			return p.Status == domain.StatusCancelled
		}), stored.UpdatedAt).Return(nil)
		streams.On("PublishToStream", ctx, domain.StreamPlanEvents, eventOfType(domain.PlanStatusChanged)).Return(nil)

		plan, err := uc.ChangeStatus(ctx, domain.Identity{ID: "u1"}, stored.ID, domain.StatusCancelled)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, plan.Status)
		plans.AssertExpectations(t)
		streams.AssertExpectations(t)
	})

	t.Run("illegal step", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, stored.ID).Return(stored, nil)

		_, err := uc.ChangeStatus(ctx, domain.Identity{ID: "u1"}, stored.ID, domain.StatusCompleted)

		assert.Equal(t, validator.KindInvalidTransition, violationKind(t, err))
		plans.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other user", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, stored.ID).Return(stored, nil)

		_, err := uc.ChangeStatus(ctx, domain.Identity{ID: "u2"}, stored.ID, domain.StatusPlanned)

		assert.Equal(t, validator.KindOwnershipViolation, violationKind(t, err))
	})
}

func TestPlanUseCase_Transitions(t *testing.T) {
	ctx := context.Background()
	uc, plans, _ := newPlanUseCase()
	plans.On("GetByID", ctx, "p1").Return(savedPlan(), nil)

	resp, err := uc.Transitions(ctx, domain.Identity{ID: "u1"}, "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, resp.Current)
	assert.Equal(t, []domain.PlanStatus{domain.StatusPlanned, domain.StatusCancelled}, resp.Next)
}

func TestPlanUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		uc, plans, streams := newPlanUseCase()
		plans.On("GetByID", ctx, "p1").Return(savedPlan(), nil)
		plans.On("Delete", ctx, "p1").Return(nil)
		streams.On("PublishToStream", ctx, domain.StreamPlanEvents, eventOfType(domain.PlanDeleted)).Return(nil)

		require.NoError(t, uc.Delete(ctx, domain.Identity{ID: "u1"}, "p1"))
		plans.AssertExpectations(t)
		streams.AssertExpectations(t)
	})

	t.Run("other user", func(t *testing.T) {
		uc, plans, _ := newPlanUseCase()
		plans.On("GetByID", ctx, "p1").Return(savedPlan(), nil)

		err := uc.Delete(ctx, domain.Identity{ID: "u2"}, "p1")

		assert.Equal(t, validator.KindOwnershipViolation, violationKind(t, err))
		plans.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
