// Package rest carries the API error contract: not-found responses are a
// single {"detail": ...} object, validation failures are a mapping of field
// name to a list of messages. Handlers funnel service errors through
// WriteError so both shapes stay uniform across endpoints.
package rest

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"
)

// DetailPatientNotFound is the detail string returned for every not-found
// response in this API.
const DetailPatientNotFound = "Patient not found"

// Validation messages, matching the wording external consumers already
// depend on.
const (
	MsgRequired      = "This field is required."
	MsgInvalidEmail  = "Enter a valid email address."
	MsgInvalidNumber = "A valid number is required."
	MsgInvalidString = "Not a valid string."
	MsgInvalidDate   = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgInvalidTime   = "Time has wrong format. Use one of these formats instead: hh:mm[:ss]."
)

// MsgInvalidChoice renders the message for a value outside a field's choice set.
func MsgInvalidChoice(value string) string {
	return fmt.Sprintf("%q is not a valid choice.", value)
}

// MsgInvalidPK renders the message for a reference to a nonexistent row.
func MsgInvalidPK(value string) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", value)
}

// NotFoundError maps to a 404 response with a {"detail": ...} body.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

func NotFound(detail string) *NotFoundError {
	return &NotFoundError{Detail: detail}
}

// PatientNotFound is the not-found error used by every handler in this API.
func PatientNotFound() *NotFoundError {
	return NotFound(DetailPatientNotFound)
}

// ValidationError maps to a 400 response whose body is the Fields mapping.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no field errors have been recorded.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// ErrOrNil returns nil when no field errors were recorded, so services can
// end validation with `return verr.ErrOrNil()`.
func (e *ValidationError) ErrOrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// WriteError converts a service error into the API's response shape.
// Unrecognized errors propagate as a generic 500.
func WriteError(c echo.Context, err error) error {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return c.JSON(http.StatusNotFound, map[string]string{"detail": nf.Detail})
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ve.Fields)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParseFloat accepts a JSON-decoded value as a float, tolerating numeric
// strings the way the API always has.
func ParseFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
