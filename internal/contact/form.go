// Package contact validates contact form requests and persists them as submissions.
package contact

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
)

// Request is the body of a contact form post
type Request struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Service       string `json:"service,omitempty"`
	Message       string `json:"message"`
	ContactMethod string `json:"contactMethod,omitempty"`
	Locale        string `json:"locale,omitempty"`
}

// FieldError identifies one failing field for form re-rendering
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate returns every field error, sorted by field name. An empty result means the request is valid.
func (r Request) Validate() []FieldError {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(2, 0).Error("name must be at least 2 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("please enter a valid email"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.RuneLength(10, 0).Error("message must be at least 10 characters"),
		),
		validation.Field(&r.ContactMethod,
			validation.In("phone", "email").Error("contact method must be phone or email"),
		),
		validation.Field(&r.Locale,
			validation.In(string(i18n.English), string(i18n.German)).Error("locale must be en or de"),
		),
	)
	return fieldErrors(err)
}

func fieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(errs))
	for field, fe := range errs {
		out = append(out, FieldError{Field: field, Message: fe.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// ValidationError carries the field errors of a rejected request
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
