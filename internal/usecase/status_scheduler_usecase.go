package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
	"github.com/erdoganeray/travelApp/internal/itinerary"
)

// StatusSchedulerUseCase продвигает планы по датам: planned -> in-progress в
// день начала, in-progress -> completed после дня окончания. Черновики не трогает.
type StatusSchedulerUseCase struct {
	plans     repository.PlanRepository
	streams   repository.StreamRepository
	batchSize int
	logger    *zap.Logger
}

func NewStatusSchedulerUseCase(
	plans repository.PlanRepository,
	streams repository.StreamRepository,
	batchSize int,
	logger *zap.Logger,
) *StatusSchedulerUseCase {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &StatusSchedulerUseCase{
		plans:     plans,
		streams:   streams,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Run advances every due plan once and returns how many moved.
func (uc *StatusSchedulerUseCase) Run(ctx context.Context, now time.Time) (int, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// completed first, so a plan started today is not finished in the same pass
	steps := []struct {
		from, to domain.PlanStatus
	}{
		{domain.StatusInProgress, domain.StatusCompleted},
		{domain.StatusPlanned, domain.StatusInProgress},
	}

	advanced := 0
	for _, step := range steps {
		due, err := uc.plans.ListDueForTransition(ctx, step.from, today, uc.batchSize)
		if err != nil {
			return advanced, err
		}

		for _, plan := range due {
			if err := ctx.Err(); err != nil {
				return advanced, err
			}
			if uc.advance(ctx, plan, step.to, now) {
				advanced++
			}
		}
	}

	if advanced > 0 {
		uc.logger.Info("Plan statuses advanced", zap.Int("count", advanced))
	}
	return advanced, nil
}

func (uc *StatusSchedulerUseCase) advance(ctx context.Context, plan domain.TravelPlan, target domain.PlanStatus, now time.Time) bool {
	next, err := itinerary.AdvanceStatus(plan, target, now)
	if err != nil {
		uc.logger.Warn("Plan cannot be advanced", zap.String("plan_id", plan.ID), zap.Error(err))
		return false
	}

	if err := uc.plans.Update(ctx, next, plan.UpdatedAt); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			uc.logger.Debug("Plan changed concurrently, skipping", zap.String("plan_id", plan.ID))
			return false
		}
		uc.logger.Error("Failed to advance plan", zap.String("plan_id", plan.ID), zap.Error(err))
		return false
	}

	event := domain.NewPlanEvent(domain.PlanStatusChanged, next, now)
	event.PreviousStatus = plan.Status
	if err := uc.streams.PublishToStream(ctx, domain.StreamPlanEvents, event); err != nil {
		uc.logger.Warn("Failed to publish plan event", zap.String("plan_id", plan.ID), zap.Error(err))
	}
	return true
}
