package itinerary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/pkg/validator"
)

const (
	currencies      = "USD TRY EUR"
	statuses        = "draft planned in-progress completed cancelled"
	paces           = "relaxed moderate intense"
	interests       = "culture food nature shopping history entertainment"
	transportations = "walking public taxi rental"
)

var planRules = []validator.Rule[domain.TravelPlan]{
	{
		Field:  "title",
		Tag:    "required",
		Kind:   validator.KindMissingField,
		Reason: "title is required",
		Value:  func(p domain.TravelPlan) interface{} { return p.Title },
	},
	{
		Field:  "destinationCityId",
		Tag:    "required",
		Kind:   validator.KindMissingField,
		Reason: "destination city is required",
		Value:  func(p domain.TravelPlan) interface{} { return p.DestinationCityID },
	},
	{
		Field:  "budget.amount",
		Tag:    "gte=0",
		Kind:   validator.KindRangeViolation,
		Reason: "budget cannot be negative",
		Value:  func(p domain.TravelPlan) interface{} { return p.Budget.Amount },
	},
	{
		Field:  "budget.currency",
		Tag:    "oneof=" + currencies,
		Kind:   validator.KindFormatViolation,
		Reason: "currency must be one of " + currencies,
		Value:  func(p domain.TravelPlan) interface{} { return string(p.Budget.Currency) },
	},
	{
		Field:  "status",
		Tag:    "oneof=" + statuses,
		Kind:   validator.KindFormatViolation,
		Reason: "status must be one of " + statuses,
		Value:  func(p domain.TravelPlan) interface{} { return string(p.Status) },
	},
	{
		Field:  "preferences.pace",
		Tag:    "oneof=" + paces,
		Kind:   validator.KindFormatViolation,
		Reason: "pace must be one of " + paces,
		Value:  func(p domain.TravelPlan) interface{} { return string(p.Preferences.Pace) },
	},
}

var interestRule = []validator.Rule[domain.Interest]{{
	Tag:    "oneof=" + interests,
	Kind:   validator.KindFormatViolation,
	Reason: "interest must be one of " + interests,
	Value:  func(i domain.Interest) interface{} { return string(i) },
}}

var transportationRule = []validator.Rule[domain.Transportation]{{
	Tag:    "oneof=" + transportations,
	Kind:   validator.KindFormatViolation,
	Reason: "transportation must be one of " + transportations,
	Value:  func(t domain.Transportation) interface{} { return string(t) },
}}

var activityRules = []validator.Rule[domain.Activity]{
	{
		Field:  "placeId",
		Tag:    "required",
		Kind:   validator.KindMissingField,
		Reason: "place reference is required",
		Value:  func(a domain.Activity) interface{} { return a.PlaceID },
	},
	{
		Field:  "startTime",
		Tag:    "hhmm",
		Kind:   validator.KindFormatViolation,
		Reason: "invalid time format (HH:MM)",
		Value:  func(a domain.Activity) interface{} { return a.StartTime },
	},
	{
		Field:  "endTime",
		Tag:    "hhmm",
		Kind:   validator.KindFormatViolation,
		Reason: "invalid time format (HH:MM)",
		Value:  func(a domain.Activity) interface{} { return a.EndTime },
	},
}

// checkPlan runs every invariant against a merged plan. startChanged enables
// the "start date not in the past" rule.
func checkPlan(p domain.TravelPlan, today time.Time, startChanged bool) []validator.Violation {
	out := validator.Check("", p, planRules)

	for i, in := range p.Preferences.Interests {
		out = append(out, validator.Check(fmt.Sprintf("preferences.interests[%d]", i), in, interestRule)...)
	}
	for i, t := range p.Preferences.Transportation {
		out = append(out, validator.Check(fmt.Sprintf("preferences.transportation[%d]", i), t, transportationRule)...)
	}

	out = append(out, checkWindow(p, today, startChanged)...)

	seen := make(map[time.Time]int, len(p.DayPlans))
	for i, day := range p.DayPlans {
		prefix := fmt.Sprintf("dayPlans[%d]", i)
		out = append(out, checkDay(prefix, day, p.StartDate, p.EndDate)...)
		if !day.Date.IsZero() {
			if first, dup := seen[day.Date]; dup {
				out = append(out, validator.Violation{
					Kind:   validator.KindOrderingViolation,
					Field:  prefix + ".date",
					Reason: fmt.Sprintf("day %s is already planned in dayPlans[%d]", day.Date.Format("2006-01-02"), first),
					Actual: day.Date.Format("2006-01-02"),
				})
			} else {
				seen[day.Date] = i
			}
		}
	}
	return out
}

func checkWindow(p domain.TravelPlan, today time.Time, startChanged bool) []validator.Violation {
	var out []validator.Violation
	if startChanged && !p.StartDate.IsZero() && p.StartDate.Before(today) {
		out = append(out, validator.Violation{
			Kind:     validator.KindOrderingViolation,
			Field:    "startDate",
			Reason:   "start date must not be in the past",
			Expected: ">= " + today.Format("2006-01-02"),
			Actual:   p.StartDate.Format("2006-01-02"),
		})
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		out = append(out, validator.Violation{
			Kind:     validator.KindOrderingViolation,
			Field:    "endDate",
			Reason:   "end date must not be before start date",
			Expected: ">= " + p.StartDate.Format("2006-01-02"),
			Actual:   p.EndDate.Format("2006-01-02"),
		})
	}
	return out
}

func checkDay(prefix string, day domain.DayPlan, start, end time.Time) []validator.Violation {
	var out []validator.Violation
	if !day.Date.IsZero() && !start.IsZero() && !end.IsZero() &&
		(day.Date.Before(start) || day.Date.After(end)) {
		out = append(out, validator.Violation{
			Kind:     validator.KindOrderingViolation,
			Field:    prefix + ".date",
			Reason:   "day must fall within the trip dates",
			Expected: start.Format("2006-01-02") + ".." + end.Format("2006-01-02"),
			Actual:   day.Date.Format("2006-01-02"),
		})
	}
	for j, a := range day.Activities {
		out = append(out, checkActivity(fmt.Sprintf("%s.activities[%d]", prefix, j), a)...)
	}
	return out
}

func checkActivity(prefix string, a domain.Activity) []validator.Violation {
	out := validator.Check(prefix, a, activityRules)
	if validator.IsTimeOfDay(a.StartTime) && validator.IsTimeOfDay(a.EndTime) &&
		minutes(a.EndTime) <= minutes(a.StartTime) {
		out = append(out, validator.Violation{
			Kind:     validator.KindOrderingViolation,
			Field:    validator.Join(prefix, "endTime"),
			Reason:   "activity must end after it starts",
			Expected: "> " + a.StartTime,
			Actual:   a.EndTime,
		})
	}
	return out
}

// minutes converts a validated H:MM / HH:MM string to minutes since midnight.
func minutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}
