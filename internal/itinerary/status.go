package itinerary

import (
	"fmt"
	"time"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
)

var transitions = map[domain.PlanStatus][]domain.PlanStatus{
	domain.StatusDraft:      {domain.StatusPlanned, domain.StatusCancelled},
	domain.StatusPlanned:    {domain.StatusInProgress, domain.StatusCancelled},
	domain.StatusInProgress: {domain.StatusCompleted, domain.StatusCancelled},
	domain.StatusCompleted:  nil,
	domain.StatusCancelled:  nil,
}

// CanTransition reports whether from -> to is a legal step. Staying in the same
// status is never a step.
func CanTransition(from, to domain.PlanStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from s in one step.
func NextStatuses(s domain.PlanStatus) []domain.PlanStatus {
	return append([]domain.PlanStatus{}, transitions[s]...)
}

// IsKnownStatus reports whether s is one of the five plan statuses.
func IsKnownStatus(s domain.PlanStatus) bool {
	_, ok := transitions[s]
	return ok
}

// AdvanceStatus moves plan to target. plan is not modified.
func AdvanceStatus(plan domain.TravelPlan, target domain.PlanStatus, now time.Time) (domain.TravelPlan, error) {
	if !IsKnownStatus(target) {
		return domain.TravelPlan{}, validator.NewError(validator.Violation{
			Kind:     validator.KindFormatViolation,
			Field:    "status",
			Reason:   "status must be one of " + statuses,
			Expected: statuses,
			Actual:   string(target),
		})
	}
	if !CanTransition(plan.Status, target) {
		return domain.TravelPlan{}, validator.NewError(validator.Violation{
			Kind:     validator.KindInvalidTransition,
			Field:    "status",
			Reason:   fmt.Sprintf("cannot move plan from %s to %s", plan.Status, target),
			Expected: expectedNext(plan.Status),
			Actual:   string(target),
		})
	}

	out := plan.Clone()
	out.Status = target
	out.UpdatedAt = now.UTC()
	return out, nil
}

// Authorize checks that callerID owns plan.
func Authorize(plan domain.TravelPlan, callerID string) error {
	if callerID == "" || plan.OwnerID != callerID {
		return validator.NewError(validator.Violation{
			Kind:   validator.KindOwnershipViolation,
			Field:  "ownerId",
			Reason: "plan belongs to another user",
		})
	}
	return nil
}

func expectedNext(s domain.PlanStatus) string {
	next := transitions[s]
	if len(next) == 0 {
		return "none (" + string(s) + " is terminal)"
	}
	out := ""
	for i, n := range next {
		if i > 0 {
			out += " | "
		}
		out += string(n)
	}
	return out
}
