package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMemberExists is returned when signing up with a taken email.
	ErrMemberExists = errors.New("member with this email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password share it so callers cannot probe
	// which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountInactive is returned when a deactivated member logs in.
	ErrAccountInactive = errors.New("account is inactive, please contact administrator")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrMemberNotFound is returned when operating on a nonexistent member.
	ErrMemberNotFound = errors.New("member not found")
	// ErrDuplicateAttendance is returned when attendance was already marked today.
	ErrDuplicateAttendance = errors.New("attendance already marked for today, you can only mark attendance once per day")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrMemberExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "MEMBER_ALREADY_EXISTS")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrAccountInactive:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "ACCOUNT_INACTIVE")
	case ErrInvalidRefreshToken:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	case ErrMemberNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEMBER_NOT_FOUND")
	case ErrDuplicateAttendance:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_ATTENDANCE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
