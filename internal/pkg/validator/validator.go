package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	timeOfDayPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	objectIDPattern  = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

func init() {
	validate = validator.New()

	// Field paths in violations use the JSON names clients send.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister("hhmm", func(fl validator.FieldLevel) bool {
		return timeOfDayPattern.MatchString(fl.Field().String())
	})
	mustRegister("objectid", func(fl validator.FieldLevel) bool {
		return objectIDPattern.MatchString(fl.Field().String())
	})
	mustRegister("currency", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "USD", "TRY", "EUR":
			return true
		}
		return false
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate - валидация структуры. Ошибки go-playground переводятся в *ValidationError.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Kind:     kindFor(fe.Tag(), fe.Kind()),
			Field:    fieldPath(fe.Namespace()),
			Reason:   reasonFor(fe),
			Expected: expectation(fe.Tag(), fe.Param()),
			Actual:   fe.Value(),
		})
	}
	return NewError(violations...)
}

// IsTimeOfDay reports whether s is a 24-hour HH:MM time.
func IsTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// fieldPath drops the root struct name from a validator namespace
// ("RegisterRequest.email" -> "email").
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func kindFor(tag string, k reflect.Kind) Kind {
	switch tag {
	case "required", "required_if", "required_with", "required_without":
		return KindMissingField
	case "gtfield", "gtefield", "ltfield", "ltefield":
		return KindOrderingViolation
	case "min", "max", "len", "gt", "gte", "lt", "lte":
		if k == reflect.String || k == reflect.Slice || k == reflect.Map {
			return KindFormatViolation
		}
		return KindRangeViolation
	default:
		return KindFormatViolation
	}
}

func expectation(tag, param string) string {
	if param == "" {
		return tag
	}
	return tag + "=" + param
}

func reasonFor(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of [" + fe.Param() + "]"
	case "email":
		return field + " must be a valid email address"
	case "url", "http_url":
		return field + " must be a valid URL"
	case "hhmm":
		return field + " must be a time in HH:MM format"
	case "objectid":
		return field + " must be a 24-character hex identifier"
	case "currency":
		return field + " must be one of USD, TRY, EUR"
	case "min", "gte":
		return field + " must be at least " + fe.Param()
	case "max", "lte":
		return field + " must be at most " + fe.Param()
	default:
		return field + " failed " + expectation(fe.Tag(), fe.Param())
	}
}
