package dto

import "net/http"

// Error codes exposed on the wire, format ERR_<DESCRIPTION>.
const (
	ErrCodeInternal       = "ERR_INTERNAL"
	ErrCodeBadRequest     = "ERR_BAD_REQUEST"
	ErrCodeValidation     = "ERR_VALIDATION"
	ErrCodeUnauthorized   = "ERR_UNAUTHORIZED"
	ErrCodeForbidden      = "ERR_FORBIDDEN"
	ErrCodeNotFound       = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists  = "ERR_ALREADY_EXISTS"
	ErrCodeInvalidInput   = "ERR_INVALID_INPUT"
	ErrCodeNotImplemented = "ERR_NOT_IMPLEMENTED"
)

var statusByCode = map[string]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeValidation:     http.StatusBadRequest,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeAlreadyExists:  http.StatusConflict,
	ErrCodeInvalidInput:   http.StatusBadRequest,
	ErrCodeNotImplemented: http.StatusNotImplemented,
}

// domainCodeMapping translates the codes raised by the domain layer to
// their wire form.
var domainCodeMapping = map[string]string{
	"NOT_FOUND":               ErrCodeNotFound,
	"ALREADY_EXISTS":          ErrCodeAlreadyExists,
	"INVALID_INPUT":           ErrCodeInvalidInput,
	"UNAUTHORIZED":            ErrCodeUnauthorized,
	"FORBIDDEN":               ErrCodeForbidden,
	"VALIDATION_ERROR":        ErrCodeValidation,
	"NOT_IMPLEMENTED":         ErrCodeNotImplemented,
	"UNSUPPORTED_REPORT_TYPE": ErrCodeBadRequest,
}

// GetHTTPStatus returns the HTTP status for a wire error code, or 500
// for codes it does not know.
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode converts a domain error code to its wire form.
// Codes already in wire form, and unknown codes, pass through as-is.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := domainCodeMapping[code]; ok {
		return wireCode
	}
	return code
}
