// Package forms implements declarative, field-level request validation.
// Every rule on every field runs; failures aggregate into a single
// report keyed by field name. Validation is all-or-nothing: callers
// mutate nothing when the report is non-empty.
package forms

import (
	"crypto/subtle"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps a field name to its failure messages, in rule order.
type Errors map[string][]string

// Add appends a failure message for the field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Any reports whether any field failed.
func (e Errors) Any() bool {
	return len(e) > 0
}

// First projects the report down to the first message per field.
func (e Errors) First() map[string]string {
	out := make(map[string]string, len(e))
	for field, messages := range e {
		if len(messages) > 0 {
			out[field] = messages[0]
		}
	}
	return out
}

// CSRF pairs the anti-forgery token issued to the client with the one
// echoed back on the submission.
type CSRF struct {
	Issued    string
	Submitted string
}

// Valid reports whether the echoed token matches the issued one.
// Absence on either side is a mismatch.
func (c CSRF) Valid() bool {
	if c.Issued == "" || c.Submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Issued), []byte(c.Submitted)) == 1
}

// checkCSRF gates field validation: a missing or mismatched token fails
// the whole submission before any field rule runs.
func checkCSRF(csrf CSRF) Errors {
	if csrf.Valid() {
		return nil
	}
	errs := Errors{}
	errs.Add("csrf_token", "The CSRF token is missing or invalid.")
	return errs
}

// required fails on empty values.
func required(value string) string {
	if value == "" {
		return "This field is required."
	}
	return ""
}

// emailShape fails on values that do not look like an email address.
func emailShape(value string) string {
	if err := validate.Var(value, "email"); err != nil {
		return "Invalid email address."
	}
	return ""
}
