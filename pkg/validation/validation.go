// Package validation checks console forms before any remote call is made.
package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error is a form validation failure. Message is shown to the user as is.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsValidation reports whether err is a form validation failure.
func IsValidation(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}

// New returns a validation failure with a user facing message.
func New(message string) error {
	return &Error{Message: message}
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates a form whose fields carry `validate` tags. Fields are
// checked in declaration order and the first failure wins; its message is
// looked up in messages by "Field.tag", then by "Field".
func Struct(form interface{}, messages map[string]string) error {
	err := instance().Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("failed to validate form: %w", err)
	}

	first := fieldErrors[0]
	if message, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return &Error{Field: first.Field(), Message: message}
	}
	if message, ok := messages[first.Field()]; ok {
		return &Error{Field: first.Field(), Message: message}
	}
	return &Error{
		Field:   first.Field(),
		Message: fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", first.Field(), first.Tag()),
	}
}
