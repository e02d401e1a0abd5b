package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamPlanEvents = "stream:plans:events"
)

type PlanEventType string

const (
	PlanCreated       PlanEventType = "plan.created"
	PlanUpdated       PlanEventType = "plan.updated"
	PlanStatusChanged PlanEventType = "plan.status_changed"
	PlanDeleted       PlanEventType = "plan.deleted"
)

// PlanEvent - событие жизненного цикла плана, публикуемое в Redis Stream
type PlanEvent struct {
	ID             uuid.UUID     `json:"id"`
	Type           PlanEventType `json:"type"`
	PlanID         string        `json:"plan_id"`
	OwnerID        string        `json:"owner_id"`
	Status         PlanStatus    `json:"status"`
	PreviousStatus PlanStatus    `json:"previous_status,omitempty"`
	OccurredAt     time.Time     `json:"occurred_at"`
}

// NewPlanEvent builds an event for plan at now.
func NewPlanEvent(t PlanEventType, plan TravelPlan, now time.Time) PlanEvent {
	return PlanEvent{
		ID:         uuid.New(),
		Type:       t,
		PlanID:     plan.ID,
		OwnerID:    plan.OwnerID,
		Status:     plan.Status,
		OccurredAt: now,
	}
}
