// Package itinerary holds the travel plan invariants: it turns client payloads
// into normalized plans or classified rejections, and owns the status machine.
// Everything here is pure; callers supply the clock.
package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
)

// Validator validates plans for create and update.
type Validator struct {
	now func() time.Time
}

// NewValidator returns a Validator using clock; nil means time.Now.
func NewValidator(clock func() time.Time) *Validator {
	if clock == nil {
		clock = time.Now
	}
	return &Validator{now: clock}
}

// ValidateForCreate builds a new draft plan owned by callerID from a full payload.
func (v *Validator) ValidateForCreate(p PlanPayload, callerID string) (domain.TravelPlan, error) {
	now := v.now().UTC()

	var violations []validator.Violation
	if p.ID != nil {
		violations = append(violations, validator.Violation{
			Kind:   validator.KindImmutableField,
			Field:  "id",
			Reason: "id is assigned by the store",
			Actual: *p.ID,
		})
	}
	if p.OwnerID != nil && *p.OwnerID != callerID {
		violations = append(violations, validator.Violation{
			Kind:   validator.KindOwnershipViolation,
			Field:  "ownerId",
			Reason: "plans can only be created for the calling user",
		})
	}
	if p.Status != nil && domain.PlanStatus(*p.Status) != domain.StatusDraft {
		violations = append(violations, validator.Violation{
			Kind:     validator.KindInvalidTransition,
			Field:    "status",
			Reason:   "new plans start as draft",
			Expected: string(domain.StatusDraft),
			Actual:   *p.Status,
		})
	}

	plan, applied := apply(domain.TravelPlan{}, p, true)
	violations = append(violations, applied...)

	plan.OwnerID = callerID
	plan.Status = domain.StatusDraft
	if plan.DayPlans == nil {
		plan.DayPlans = []domain.DayPlan{}
	}
	if plan.Preferences.Interests == nil {
		plan.Preferences.Interests = []domain.Interest{}
	}
	if plan.Preferences.Transportation == nil {
		plan.Preferences.Transportation = []domain.Transportation{}
	}
	plan.CreatedAt = now
	plan.UpdatedAt = now

	violations = append(violations, checkPlan(plan, dayOf(now), true)...)
	if err := validator.NewError(finalize(violations)...); err != nil {
		return domain.TravelPlan{}, err
	}
	return plan, nil
}

// ValidateForUpdate merges a partial payload over existing and re-checks every
// invariant on the result. existing is never modified. A status different from
// the stored one goes through AdvanceStatus.
func (v *Validator) ValidateForUpdate(existing domain.TravelPlan, p PlanPayload) (domain.TravelPlan, error) {
	now := v.now().UTC()

	var violations []validator.Violation
	if p.ID != nil && *p.ID != existing.ID {
		violations = append(violations, validator.Violation{
			Kind:     validator.KindImmutableField,
			Field:    "id",
			Reason:   "id cannot be changed",
			Expected: existing.ID,
			Actual:   *p.ID,
		})
	}
	if p.OwnerID != nil && *p.OwnerID != existing.OwnerID {
		violations = append(violations, validator.Violation{
			Kind:   validator.KindImmutableField,
			Field:  "ownerId",
			Reason: "owner cannot be changed",
			Actual: *p.OwnerID,
		})
	}

	plan, applied := apply(existing.Clone(), p, false)
	violations = append(violations, applied...)

	startChanged := !plan.StartDate.Equal(existing.StartDate)
	violations = append(violations, checkPlan(plan, dayOf(now), startChanged)...)

	if p.Status != nil && domain.PlanStatus(*p.Status) != existing.Status {
		advanced, err := AdvanceStatus(plan, domain.PlanStatus(*p.Status), now)
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			violations = append(violations, verr.Violations...)
		case err == nil:
			plan.Status = advanced.Status
		}
	}

	if err := validator.NewError(finalize(violations)...); err != nil {
		return domain.TravelPlan{}, err
	}
	plan.UpdatedAt = now
	return plan, nil
}

// ValidateActivity normalizes a single activity and checks its invariants.
func (v *Validator) ValidateActivity(a domain.Activity) (domain.Activity, error) {
	a = normalizeActivity(a)
	if err := validator.NewError(checkActivity("", a)...); err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

// apply writes payload fields over base. With required set, absent required
// fields are reported as MissingField.
func apply(base domain.TravelPlan, p PlanPayload, required bool) (domain.TravelPlan, []validator.Violation) {
	var out []validator.Violation
	missing := func(field, reason string) {
		if required {
			out = append(out, validator.Violation{Kind: validator.KindMissingField, Field: field, Reason: reason})
		}
	}

	if p.Title != nil {
		base.Title = strings.TrimSpace(*p.Title)
	} else {
		missing("title", "title is required")
	}
	if p.Description != nil {
		base.Description = strings.TrimSpace(*p.Description)
	}
	if p.DestinationCityID != nil {
		base.DestinationCityID = strings.TrimSpace(*p.DestinationCityID)
	} else {
		missing("destinationCityId", "destination city is required")
	}

	if p.StartDate != nil {
		d, ok := parseDate(*p.StartDate)
		if !ok {
			out = append(out, typeMismatch("startDate", *p.StartDate))
		}
		base.StartDate = d
	} else {
		missing("startDate", "start date is required")
	}
	if p.EndDate != nil {
		d, ok := parseDate(*p.EndDate)
		if !ok {
			out = append(out, typeMismatch("endDate", *p.EndDate))
		}
		base.EndDate = d
	} else {
		missing("endDate", "end date is required")
	}

	if p.Budget != nil {
		if p.Budget.Amount != nil {
			base.Budget.Amount = *p.Budget.Amount
		} else {
			missing("budget.amount", "budget amount is required")
		}
		if p.Budget.Currency != nil {
			base.Budget.Currency = domain.Currency(strings.ToUpper(strings.TrimSpace(*p.Budget.Currency)))
		} else {
			missing("budget.currency", "currency is required")
		}
	} else {
		missing("budget.amount", "budget amount is required")
		missing("budget.currency", "currency is required")
	}

	if p.Preferences != nil {
		if p.Preferences.Pace != nil {
			base.Preferences.Pace = domain.Pace(strings.TrimSpace(*p.Preferences.Pace))
		} else {
			missing("preferences.pace", "pace is required")
		}
		if p.Preferences.Interests != nil {
			base.Preferences.Interests = uniqueInterests(*p.Preferences.Interests)
		}
		if p.Preferences.Transportation != nil {
			base.Preferences.Transportation = uniqueTransportation(*p.Preferences.Transportation)
		}
	} else {
		missing("preferences.pace", "pace is required")
	}

	if p.DayPlans != nil {
		days, dayViolations := applyDays(*p.DayPlans)
		base.DayPlans = days
		out = append(out, dayViolations...)
	}
	return base, out
}

func applyDays(in []DayPlanPayload) ([]domain.DayPlan, []validator.Violation) {
	var out []validator.Violation
	days := make([]domain.DayPlan, 0, len(in))
	for i, dp := range in {
		prefix := fmt.Sprintf("dayPlans[%d]", i)
		day := domain.DayPlan{Activities: make([]domain.Activity, 0, len(dp.Activities))}

		if dp.Date == nil {
			out = append(out, validator.Violation{
				Kind:   validator.KindMissingField,
				Field:  prefix + ".date",
				Reason: "day date is required",
			})
		} else if d, ok := parseDate(*dp.Date); ok {
			day.Date = d
		} else {
			out = append(out, typeMismatch(prefix+".date", *dp.Date))
		}

		for j, ap := range dp.Activities {
			field := fmt.Sprintf("%s.activities[%d]", prefix, j)
			if ap.StartTime == nil {
				out = append(out, validator.Violation{Kind: validator.KindMissingField, Field: field + ".startTime", Reason: "start time is required"})
			}
			if ap.EndTime == nil {
				out = append(out, validator.Violation{Kind: validator.KindMissingField, Field: field + ".endTime", Reason: "end time is required"})
			}
			day.Activities = append(day.Activities, normalizeActivity(domain.Activity{
				PlaceID:   deref(ap.PlaceID),
				StartTime: deref(ap.StartTime),
				EndTime:   deref(ap.EndTime),
				Notes:     deref(ap.Notes),
			}))
		}
		days = append(days, day)
	}
	return days, out
}

func normalizeActivity(a domain.Activity) domain.Activity {
	a.PlaceID = strings.TrimSpace(a.PlaceID)
	a.StartTime = strings.TrimSpace(a.StartTime)
	a.EndTime = strings.TrimSpace(a.EndTime)
	a.Notes = strings.TrimSpace(a.Notes)
	return a
}

// finalize drops secondary violations on fields already reported missing or
// mistyped, so each field is reported for its root cause only.
func finalize(in []validator.Violation) []validator.Violation {
	root := make(map[string]bool)
	for _, v := range in {
		if v.Kind == validator.KindMissingField || v.Kind == validator.KindTypeMismatch {
			root[v.Field] = true
		}
	}
	out := make([]validator.Violation, 0, len(in))
	for _, v := range in {
		if root[v.Field] && v.Kind != validator.KindMissingField && v.Kind != validator.KindTypeMismatch {
			continue
		}
		out = append(out, v)
	}
	return out
}

func typeMismatch(field, value string) validator.Violation {
	return validator.Violation{
		Kind:     validator.KindTypeMismatch,
		Field:    field,
		Reason:   field + " must be a date (YYYY-MM-DD or RFC 3339)",
		Expected: "date",
		Actual:   value,
	}
}

func uniqueInterests(in []string) []domain.Interest {
	out := make([]domain.Interest, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, domain.Interest(s))
	}
	return out
}

func uniqueTransportation(in []string) []domain.Transportation {
	out := make([]domain.Transportation, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, domain.Transportation(s))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
