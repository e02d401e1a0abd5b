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
	"github.com/erdoganeray/travelApp/internal/usecase"
)

func TestStatusSchedulerUseCase_Run(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 11, 3, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	started := savedPlan()
	started.Status = domain.StatusPlanned

	finished := savedPlan()
	finished.ID = "665f1c2b9d3e4a0012345679"
	finished.Status = domain.StatusInProgress
	finished.StartDate = today.AddDate(0, 0, -5)
	finished.EndDate = today.AddDate(0, 0, -1)

	t.Run("advances due plans", func(t *testing.T) {
		plans := new(MockPlanRepository)
		streams := new(MockStreamRepository)
		uc := usecase.NewStatusSchedulerUseCase(plans, streams, 50, zap.NewNop())

		plans.On("ListDueForTransition", ctx, domain.StatusInProgress, today, 50).Return([]domain.TravelPlan{finished}, nil)
		plans.On("ListDueForTransition", ctx, domain.StatusPlanned, today, 50).Return([]domain.TravelPlan{started}, nil)
		plans.On("Update", ctx, mock.MatchedBy(func(p domain.TravelPlan) bool {
			return p.ID == finished.ID && p.Status == domain.StatusCompleted
		}), finished.UpdatedAt).Return(nil)
		plans.On("Update", ctx, mock.MatchedBy(func(p domain.TravelPlan) bool {
			return p.ID == started.ID && p.Status == domain.StatusInProgress
		}), started.UpdatedAt).Return(nil)
		streams.On("PublishToStream", ctx, domain.StreamPlanEvents, mock.MatchedBy(func(e domain.PlanEvent) bool {
			return e.Type == domain.PlanStatusChanged && e.PreviousStatus != ""
		})).Return(nil).Twice()

		advanced, err := uc.Run(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, 2, advanced)
		plans.AssertExpectations(t)
		streams.AssertExpectations(t)
	})

	t.Run("conflicting plan is skipped", func(t *testing.T) {
		plans := new(MockPlanRepository)
		streams := new(MockStreamRepository)
		uc := usecase.NewStatusSchedulerUseCase(plans, streams, 50, zap.NewNop())

		plans.On("ListDueForTransition", ctx, domain.StatusInProgress, today, 50).Return(nil, nil)
		plans.On("ListDueForTransition", ctx, domain.StatusPlanned, today, 50).Return([]domain.TravelPlan{started}, nil)
		plans.On("Update", ctx, mock.Anything, started.UpdatedAt).Return(domain.ErrConflict)

		advanced, err := uc.Run(ctx, now)

		require.NoError(t, err)
		assert.Zero(t, advanced)
		streams.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure stops the run", func(t *testing.T) {
		plans := new(MockPlanRepository)
		uc := usecase.NewStatusSchedulerUseCase(plans, new(MockStreamRepository), 50, zap.NewNop())

		plans.On("ListDueForTransition", ctx, domain.StatusInProgress, today, 50).Return(nil, errors.New("mongo down"))

		_, err := uc.Run(ctx, now)

		assert.EqualError(t, err, "mongo down")
	})
}
