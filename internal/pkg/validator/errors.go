package validator

import (
	"strings"
)

// Kind classifies a single violation.
type Kind string

const (
	KindMissingField       Kind = "MissingField"
	KindTypeMismatch       Kind = "TypeMismatch"
	KindRangeViolation     Kind = "RangeViolation"
	KindFormatViolation    Kind = "FormatViolation"
	KindOrderingViolation  Kind = "OrderingViolation"
	KindOwnershipViolation Kind = "OwnershipViolation"
	KindInvalidTransition  Kind = "InvalidTransition"
	KindImmutableField     Kind = "ImmutableField"
	KindUnknownField       Kind = "UnknownField"
	KindNotFound           Kind = "NotFound"
)

// Violation describes one failed constraint.
type Violation struct {
	Kind     Kind        `json:"kind"`
	Field    string      `json:"field"`
	Reason   string      `json:"reason"`
	Expected string      `json:"expected,omitempty"`
	Actual   interface{} `json:"actual,omitempty"`
}

// ValidationError is the classified rejection returned by every validation path.
// The first violation determines Kind.
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

// NewError returns nil when no violations are given. Repeated (kind, field)
// pairs are collapsed so a missing field is reported once.
func NewError(violations ...Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: dedupe(violations)}
}

// Fail builds a single-violation error.
func Fail(kind Kind, field, reason string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Kind: kind, Field: field, Reason: reason}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Reason)
	}
	return strings.Join(parts, "; ")
}

// Kind returns the kind of the first violation.
func (e *ValidationError) Kind() Kind {
	if len(e.Violations) == 0 {
		return ""
	}
	return e.Violations[0].Kind
}

// Has reports whether any violation is of kind k.
func (e *ValidationError) Has(k Kind) bool {
	for _, v := range e.Violations {
		if v.Kind == k {
			return true
		}
	}
	return false
}

// On returns the first violation recorded for field.
func (e *ValidationError) On(field string) (Violation, bool) {
	for _, v := range e.Violations {
		if v.Field == field {
			return v, true
		}
	}
	return Violation{}, false
}

// Fields lists the distinct field paths in violation order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Violations))
	seen := make(map[string]bool, len(e.Violations))
	for _, v := range e.Violations {
		if seen[v.Field] {
			continue
		}
		seen[v.Field] = true
		out = append(out, v.Field)
	}
	return out
}

// Merge combines errors produced by separate checks. Non-validation errors are
// returned as is; nil inputs are skipped.
func Merge(errs ...error) error {
	var all []Violation
	for _, err := range errs {
		if err == nil {
			continue
		}
		verr, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		all = append(all, verr.Violations...)
	}
	return NewError(all...)
}

func dedupe(in []Violation) []Violation {
	type key struct {
		kind  Kind
		field string
	}
	seen := make(map[key]struct{}, len(in))
	out := make([]Violation, 0, len(in))
	for _, v := range in {
		k := key{v.Kind, v.Field}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
