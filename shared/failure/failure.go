package failure

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable classification carried alongside the HTTP
// code so services and tests can branch on the failure category without
// string matching.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindSeatConflict      Kind = "seat_conflict"
	KindCapacityExceeded  Kind = "capacity_exceeded"
	KindLabNotProvisioned Kind = "lab_not_provisioned"
	KindStaleState        Kind = "stale_state"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindInternal          Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInternal,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// SeatConflict reports that the target seat already carries an active
// (pending or approved) booking.
func SeatConflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindSeatConflict,
		Message: msg,
	}
}

// CapacityExceeded reports that an allocation would push the summed
// division usage past the lab's total workstations.
func CapacityExceeded(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindCapacityExceeded,
		Message: msg,
	}
}

// LabNotProvisioned reports that the target lab has no capacity row.
func LabNotProvisioned(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindLabNotProvisioned,
		Message: msg,
	}
}

// StaleState reports a transition attempted on an already-terminal request.
func StaleState(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindStaleState,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind, or KindInternal for plain errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
