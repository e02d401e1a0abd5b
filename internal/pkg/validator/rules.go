package validator

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Rule is one row of a declarative constraint table: the value found at Field
// must satisfy the validator Tag, otherwise a violation of Kind is reported.
// Kind may be left empty to derive it from the failing tag.
type Rule[T any] struct {
	Field  string
	Tag    string
	Kind   Kind
	Reason string
	Value  func(T) interface{}
}

// Check evaluates rules against target. Field paths are prefixed with prefix.
func Check[T any](prefix string, target T, rules []Rule[T]) []Violation {
	var out []Violation
	for _, r := range rules {
		value := r.Value(target)
		err := validate.Var(value, r.Tag)
		if err == nil {
			continue
		}

		kind := r.Kind
		if kind == "" {
			kind = kindFor(failedTag(err, r.Tag), reflect.ValueOf(value).Kind())
		}
		out = append(out, Violation{
			Kind:     kind,
			Field:    Join(prefix, r.Field),
			Reason:   r.Reason,
			Expected: r.Tag,
			Actual:   value,
		})
	}
	return out
}

// Join concatenates field path segments with dots, skipping empty ones.
func Join(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	case field[0] == '[':
		return prefix + field
	default:
		return prefix + "." + field
	}
}

func failedTag(err error, fallback string) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Tag()
	}
	return fallback
}
