// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// Form structs declare their rules with validator tags and are checked with
// Check, which returns the message to show or "" when the form is valid.
//
// Example usage:
//
//	type interviewForm struct {
//		Decision string `form:"Decision" validate:"required,oneof=shortlist reject hold"`
//		Notes    string `form:"Notes" validate:"max=4000"`
//	}
//
//	data.Base = formutil.NewBase(r, "Candidate", "/candidates")
//	if msg := formutil.Check(in); msg != "" {
//		data.SetError(msg)
//		templates.Render(w, r, "candidate_detail", data)
//	}
package formutil

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/dalemusser/recruitdesk/internal/app/system/viewdata"
	"github.com/go-playground/validator/v10"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	viewdata.BaseVM
	Error string
}

// NewBase populates the common Base fields from the request context.
func NewBase(r *http.Request, title, backDefault string) Base {
	return Base{BaseVM: viewdata.NewBaseVM(r, title, backDefault)}
}

// SetError sets the error message on a Base struct.
func (b *Base) SetError(msg string) {
	b.Error = msg
}

var (
	once     sync.Once
	validate *validator.Validate
)

func v() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("form"); name != "" && name != "-" {
				return name
			}
			return f.Name
		})
	})
	return validate
}

// Check validates s and returns a user-facing message for the first failing
// field, or "" when s is valid.
func Check(s any) string {
	err := v().Struct(s)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Please check the form and try again."
	}
	return message(verrs[0])
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
	case "numeric", "number":
		return fmt.Sprintf("%s must be a number.", field)
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
