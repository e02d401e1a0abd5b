package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/erdoganeray/travelApp/internal/pkg/validator"
)

// ErrMalformedPayload is returned when the body is not a JSON object at all.
var ErrMalformedPayload = errors.New("malformed plan payload")

// PlanPayload is a full or partial plan as submitted by a client.
// A nil pointer means the field was absent.
type PlanPayload struct {
	ID                *string             `json:"id,omitempty"`
	OwnerID           *string             `json:"ownerId,omitempty"`
	Title             *string             `json:"title,omitempty"`
	Description       *string             `json:"description,omitempty"`
	DestinationCityID *string             `json:"destinationCityId,omitempty"`
	StartDate         *string             `json:"startDate,omitempty"`
	EndDate           *string             `json:"endDate,omitempty"`
	Budget            *BudgetPayload      `json:"budget,omitempty"`
	DayPlans          *[]DayPlanPayload   `json:"dayPlans,omitempty"`
	Status            *string             `json:"status,omitempty"`
	Preferences       *PreferencesPayload `json:"preferences,omitempty"`
}

type BudgetPayload struct {
	Amount   *float64 `json:"amount,omitempty"`
	Currency *string  `json:"currency,omitempty"`
}

type PreferencesPayload struct {
	Pace           *string   `json:"pace,omitempty"`
	Interests      *[]string `json:"interests,omitempty"`
	Transportation *[]string `json:"transportation,omitempty"`
}

type DayPlanPayload struct {
	Date       *string           `json:"date,omitempty"`
	Activities []ActivityPayload `json:"activities,omitempty"`
}

type ActivityPayload struct {
	PlaceID   *string `json:"placeId,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// DecodePayload parses a JSON body into a PlanPayload. Keys that are not part
// of a plan yield UnknownField, a value of the wrong JSON type yields
// TypeMismatch, both with the full path including array indices. A body that
// is not JSON at all yields ErrMalformedPayload.
func DecodePayload(body []byte) (PlanPayload, error) {
	var (
		env        planEnvelope
		violations []validator.Violation
	)
	if v, err := decodeStrict(body, "", &env); err != nil {
		return PlanPayload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	} else if v != nil {
		if v.Field == "" {
			return PlanPayload{}, validator.NewError(*v)
		}
		violations = append(violations, *v)
	}

	p := PlanPayload{
		ID:                env.ID,
		OwnerID:           env.OwnerID,
		Title:             env.Title,
		Description:       env.Description,
		DestinationCityID: env.DestinationCityID,
		StartDate:         env.StartDate,
		EndDate:           env.EndDate,
		Status:            env.Status,
	}

	if present(env.Budget) {
		p.Budget = &BudgetPayload{}
		violations = appendDecoded(violations, env.Budget, "budget", p.Budget)
	}
	if present(env.Preferences) {
		p.Preferences = &PreferencesPayload{}
		violations = appendDecoded(violations, env.Preferences, "preferences", p.Preferences)
	}
	if present(env.DayPlans) {
		var raw []json.RawMessage
		violations = appendDecoded(violations, env.DayPlans, "dayPlans", &raw)
		days := make([]DayPlanPayload, 0, len(raw))
		for i, item := range raw {
			day, vs := decodeDay(item, fmt.Sprintf("dayPlans[%d]", i))
			days = append(days, day)
			violations = append(violations, vs...)
		}
		p.DayPlans = &days
	}

	if err := validator.NewError(violations...); err != nil {
		return PlanPayload{}, err
	}
	return p, nil
}

// planEnvelope - верхний уровень плана, вложенные объекты разбираются отдельно
type planEnvelope struct {
	ID                *string         `json:"id"`
	OwnerID           *string         `json:"ownerId"`
	Title             *string         `json:"title"`
	Description       *string         `json:"description"`
	DestinationCityID *string         `json:"destinationCityId"`
	StartDate         *string         `json:"startDate"`
	EndDate           *string         `json:"endDate"`
	Budget            json.RawMessage `json:"budget"`
	DayPlans          json.RawMessage `json:"dayPlans"`
	Status            *string         `json:"status"`
	Preferences       json.RawMessage `json:"preferences"`
}

type dayEnvelope struct {
	Date       *string           `json:"date"`
	Activities []json.RawMessage `json:"activities"`
}

func decodeDay(raw json.RawMessage, prefix string) (DayPlanPayload, []validator.Violation) {
	var env dayEnvelope
	violations := appendDecoded(nil, raw, prefix, &env)

	day := DayPlanPayload{Date: env.Date}
	if env.Activities != nil {
		day.Activities = make([]ActivityPayload, len(env.Activities))
		for j, item := range env.Activities {
			violations = appendDecoded(violations, item, fmt.Sprintf("%s.activities[%d]", prefix, j), &day.Activities[j])
		}
	}
	return day, violations
}

// appendDecoded decodes a fragment that is already known to be valid JSON.
func appendDecoded(violations []validator.Violation, raw json.RawMessage, prefix string, dst interface{}) []validator.Violation {
	v, err := decodeStrict(raw, prefix, dst)
	if err != nil {
		return append(violations, validator.Violation{
			Kind:   validator.KindTypeMismatch,
			Field:  prefix,
			Reason: fmt.Sprintf("%s is not valid JSON", prefix),
		})
	}
	if v != nil {
		violations = append(violations, *v)
	}
	return violations
}

// decodeStrict decodes raw into dst rejecting unknown keys. Only the first
// problem of raw is reported, with its path relative to prefix.
func decodeStrict(raw []byte, prefix string, dst interface{}) (*validator.Violation, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		if _, tailErr := dec.Token(); tailErr != io.EOF {
			return nil, errors.New("unexpected data after JSON value")
		}
		return nil, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := validator.Join(prefix, typeErr.Field)
		expected := jsonTypeName(typeErr.Type.Kind().String())
		return &validator.Violation{
			Kind:     validator.KindTypeMismatch,
			Field:    field,
			Reason:   fmt.Sprintf("%s must be of type %s", displayField(field), expected),
			Expected: expected,
			Actual:   typeErr.Value,
		}, nil
	}

	if name, ok := unknownField(err); ok {
		field := validator.Join(prefix, name)
		return &validator.Violation{
			Kind:   validator.KindUnknownField,
			Field:  field,
			Reason: fmt.Sprintf("%s is not a known field", field),
		}, nil
	}
	return nil, err
}

// unknownField извлекает имя ключа из ошибки DisallowUnknownFields
func unknownField(err error) (string, bool) {
	rest, ok := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !ok {
		return "", false
	}
	name, uerr := strconv.Unquote(rest)
	if uerr != nil {
		return "", false
	}
	return name, true
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func displayField(field string) string {
	if field == "" {
		return "body"
	}
	return field
}

func jsonTypeName(goKind string) string {
	switch goKind {
	case "float32", "float64", "int", "int64":
		return "number"
	case "slice", "array":
		return "array"
	case "struct", "map", "ptr":
		return "object"
	default:
		return goKind
	}
}
