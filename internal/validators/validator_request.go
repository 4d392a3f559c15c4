package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/intelli-scan/models"
	"github.com/go-playground/validator/v10"
)

const (
	// TagEmail is the validate tag for account email addresses.
	TagEmail = "intelli_email"

	minEmailLength = 3
	maxEmailLength = 255
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// RequestValidator validates request structs by their `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the application
// tags registered. Field names in errors use the json tag names.
//
// It panics if the email rule cannot be registered.
func NewRequestValidator() Validator {
	v, err := newRequestValidator(TagEmail)
	if err != nil {
		panic(err)
	}
	return v
}

func newRequestValidator(emailTag string) (*RequestValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(emailTag, validateEmail); err != nil {
		return nil, fmt.Errorf("error registering %q validation: %w", emailTag, err)
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}, nil
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UpdateUserRequest:
		if value.IsEmpty() {
			return ErrNoFieldsToUpdate
		}
	case *models.UpdateUserRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		if value.IsEmpty() {
			return ErrNoFieldsToUpdate
		}
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return fmt.Errorf("%w: field %q failed on %q", ErrInvalidData, fe.Field(), fe.Tag())
	}

	return fmt.Errorf("%w: %v", ErrInvalidData, err)
}

// IsValidEmail reports whether s is an acceptable account email.
func IsValidEmail(s string) bool {
	if len(s) < minEmailLength || len(s) > maxEmailLength {
		return false
	}
	return emailPattern.MatchString(s)
}

func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}
