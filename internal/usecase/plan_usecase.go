package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
	"github.com/erdoganeray/travelApp/internal/itinerary"
	apperrors "github.com/erdoganeray/travelApp/internal/pkg/errors"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
	"github.com/erdoganeray/travelApp/internal/usecase/dto"
)

// PlanUseCase - операции над планами поездок вызывающего пользователя
type PlanUseCase struct {
	plans     repository.PlanRepository
	streams   repository.StreamRepository
	validator *itinerary.Validator
	now       func() time.Time
	logger    *zap.Logger
}

// NewPlanUseCase creates a plan use case; clock nil means time.Now.
func NewPlanUseCase(
	plans repository.PlanRepository,
	streams repository.StreamRepository,
	clock func() time.Time,
	logger *zap.Logger,
) *PlanUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &PlanUseCase{
		plans:     plans,
		streams:   streams,
		validator: itinerary.NewValidator(clock),
		now:       clock,
		logger:    logger,
	}
}

// Create validates body as a new draft plan owned by the caller and stores it
func (uc *PlanUseCase) Create(ctx context.Context, identity domain.Identity, body []byte) (domain.TravelPlan, error) {
	payload, err := decode(body)
	if err != nil {
		return domain.TravelPlan{}, err
	}

	plan, err := uc.validator.ValidateForCreate(payload, identity.ID)
	if err != nil {
		uc.logger.Debug("Plan rejected", zap.String("owner_id", identity.ID), zap.Error(err))
		return domain.TravelPlan{}, err
	}

	created, err := uc.plans.Create(ctx, plan)
	if err != nil {
		uc.logger.Error("Failed to create plan", zap.String("owner_id", identity.ID), zap.Error(err))
		return domain.TravelPlan{}, err
	}

	uc.publish(ctx, domain.NewPlanEvent(domain.PlanCreated, created, uc.now().UTC()))
	uc.logger.Info("Plan created", zap.String("plan_id", created.ID), zap.String("owner_id", created.OwnerID))
	return created, nil
}

// Get returns a plan owned by the caller
func (uc *PlanUseCase) Get(ctx context.Context, identity domain.Identity, id string) (domain.TravelPlan, error) {
	return uc.load(ctx, identity, id)
}

// List returns a page of the caller's plans
func (uc *PlanUseCase) List(ctx context.Context, identity domain.Identity, filter domain.PlanFilter) (*dto.PlanListResponse, error) {
	if filter.Status != "" && !itinerary.IsKnownStatus(filter.Status) {
		return nil, validator.NewError(validator.Violation{
			Kind:   validator.KindFormatViolation,
			Field:  "status",
			Reason: "unknown status filter",
			Actual: string(filter.Status),
		})
	}
	filter.OwnerID = identity.ID

	plans, total, err := uc.plans.ListByOwner(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list plans", zap.String("owner_id", identity.ID), zap.Error(err))
		return nil, err
	}
	return &dto.PlanListResponse{Plans: plans, Total: total}, nil
}

// Update merges a partial body over the stored plan
func (uc *PlanUseCase) Update(ctx context.Context, identity domain.Identity, id string, body []byte) (domain.TravelPlan, error) {
	existing, err := uc.load(ctx, identity, id)
	if err != nil {
		return domain.TravelPlan{}, err
	}

	payload, err := decode(body)
	if err != nil {
		return domain.TravelPlan{}, err
	}

	plan, err := uc.validator.ValidateForUpdate(existing, payload)
	if err != nil {
		uc.logger.Debug("Plan update rejected", zap.String("plan_id", id), zap.Error(err))
		return domain.TravelPlan{}, err
	}

	if err := uc.plans.Update(ctx, plan, existing.UpdatedAt); err != nil {
		uc.logger.Error("Failed to update plan", zap.String("plan_id", id), zap.Error(err))
		return domain.TravelPlan{}, err
	}

	now := uc.now().UTC()
	uc.publish(ctx, domain.NewPlanEvent(domain.PlanUpdated, plan, now))
	if plan.Status != existing.Status {
		uc.publishStatusChange(ctx, plan, existing.Status, now)
	}
	return plan, nil
}

// ChangeStatus moves the plan one step through the status machine
func (uc *PlanUseCase) ChangeStatus(ctx context.Context, identity domain.Identity, id string, target domain.PlanStatus) (domain.TravelPlan, error) {
	existing, err := uc.load(ctx, identity, id)
	if err != nil {
		return domain.TravelPlan{}, err
	}

	now := uc.now().UTC()
	plan, err := itinerary.AdvanceStatus(existing, target, now)
	if err != nil {
		return domain.TravelPlan{}, err
	}

	if err := uc.plans.Update(ctx, plan, existing.UpdatedAt); err != nil {
		uc.logger.Error("Failed to change plan status", zap.String("plan_id", id), zap.Error(err))
		return domain.TravelPlan{}, err
	}

	uc.publishStatusChange(ctx, plan, existing.Status, now)
	uc.logger.Info("Plan status changed",
		zap.String("plan_id", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(plan.Status)),
	)
	return plan, nil
}

// Transitions lists the statuses the plan may move to next
func (uc *PlanUseCase) Transitions(ctx context.Context, identity domain.Identity, id string) (*dto.TransitionsResponse, error) {
	plan, err := uc.load(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	return &dto.TransitionsResponse{
		PlanID:  plan.ID,
		Current: plan.Status,
		Next:    itinerary.NextStatuses(plan.Status),
	}, nil
}

// Delete removes the plan with its days and activities
func (uc *PlanUseCase) Delete(ctx context.Context, identity domain.Identity, id string) error {
	plan, err := uc.load(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := uc.plans.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete plan", zap.String("plan_id", id), zap.Error(err))
		return err
	}

	uc.publish(ctx, domain.NewPlanEvent(domain.PlanDeleted, plan, uc.now().UTC()))
	return nil
}

func (uc *PlanUseCase) load(ctx context.Context, identity domain.Identity, id string) (domain.TravelPlan, error) {
	plan, err := uc.plans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.TravelPlan{}, apperrors.ErrPlanNotFound
		}
		return domain.TravelPlan{}, err
	}
	if err := itinerary.Authorize(plan, identity.ID); err != nil {
		uc.logger.Warn("Plan access denied", zap.String("plan_id", id), zap.String("caller_id", identity.ID))
		return domain.TravelPlan{}, err
	}
	return plan, nil
}

func (uc *PlanUseCase) publishStatusChange(ctx context.Context, plan domain.TravelPlan, previous domain.PlanStatus, now time.Time) {
	event := domain.NewPlanEvent(domain.PlanStatusChanged, plan, now)
	event.PreviousStatus = previous
	uc.publish(ctx, event)
}

// publish не возвращает ошибку: план уже сохранен
func (uc *PlanUseCase) publish(ctx context.Context, event domain.PlanEvent) {
	if uc.streams == nil {
		return
	}
	if err := uc.streams.PublishToStream(ctx, domain.StreamPlanEvents, event); err != nil {
		uc.logger.Warn("Failed to publish plan event",
			zap.String("type", string(event.Type)),
			zap.String("plan_id", event.PlanID),
			zap.Error(err),
		)
	}
}

func decode(body []byte) (itinerary.PlanPayload, error) {
	payload, err := itinerary.DecodePayload(body)
	if errors.Is(err, itinerary.ErrMalformedPayload) {
		return itinerary.PlanPayload{}, apperrors.ErrInvalidRequest.WithMessage("Request body must be a JSON object")
	}
	return payload, err
}
