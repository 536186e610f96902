package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern is a deliberately simple local-part@domain check; stricter
// RFC parsing is not the point of this API.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// New builds the validator used for user payloads.
// - Field names in errors come from json tags.
// - "emailfmt" validates the email shape accepted by this API.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("emailfmt", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// labels maps json field names to the display names used in messages.
var labels = map[string]string{
	"firstName": "First name",
	"lastName":  "Last name",
	"email":     "Email",
	"age":       "Age",
	"role":      "Role",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// Messages converts a validation error into human-readable, per-field
// messages in struct field order. Non-validator errors collapse into a
// single generic message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid payload"}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	l := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return l + " is required"
	case "max":
		if isNumberKind(fe.Kind()) {
			return l + " cannot be more than " + fe.Param()
		}
		return l + " cannot be more than " + fe.Param() + " characters"
	case "min":
		if isNumberKind(fe.Kind()) {
			if fe.Param() == "0" {
				return l + " cannot be negative"
			}
			return l + " cannot be less than " + fe.Param()
		}
		return l + " must be at least " + fe.Param() + " characters"
	case "emailfmt":
		return "Please enter a valid email"
	case "oneof":
		return l + " must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return l + " is invalid"
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
