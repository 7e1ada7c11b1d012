// Package error defines domain-specific errors for the money manager application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidMonth is returned when the month is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year is not a plausible calendar year.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidSummaryType is returned when the type filter is not a known
	// transaction type.
	ErrInvalidSummaryType = errors.New("type must be 'expense' or 'income'")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	ErrCodeInvalidMonth       AnalyticsErrorCode = "SUM-010001"
	ErrCodeInvalidYear        AnalyticsErrorCode = "SUM-010002"
	ErrCodeInvalidSummaryType AnalyticsErrorCode = "SUM-010003"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
