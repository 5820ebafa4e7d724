package domain

import "fmt"

// Error codes for domain errors
const (
	ErrCodeConfig      = "CONFIG_ERROR"
	ErrCodeReportRead  = "REPORT_READ_ERROR"
	ErrCodeReportParse = "REPORT_PARSE_ERROR"
	ErrCodeCatalog     = "CATALOG_ERROR"
	ErrCodeFile        = "FILE_ERROR"
	ErrCodeOutput      = "OUTPUT_ERROR"
)

// DomainError represents a structured error with a code and optional cause
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return DomainError{Code: ErrCodeConfig, Message: message, Cause: cause}
}

// NewReportReadError creates an error for an unreadable report file
func NewReportReadError(message string, cause error) error {
	return DomainError{Code: ErrCodeReportRead, Message: message, Cause: cause}
}

// NewReportParseError creates an error for a malformed report file
func NewReportParseError(message string, cause error) error {
	return DomainError{Code: ErrCodeReportParse, Message: message, Cause: cause}
}

// NewCatalogError creates an error for a rule catalog failure
func NewCatalogError(message string, cause error) error {
	return DomainError{Code: ErrCodeCatalog, Message: message, Cause: cause}
}

// NewFileError creates an error for a source file lookup failure
func NewFileError(message string, cause error) error {
	return DomainError{Code: ErrCodeFile, Message: message, Cause: cause}
}

// NewOutputError creates an error for an output writing failure
func NewOutputError(message string, cause error) error {
	return DomainError{Code: ErrCodeOutput, Message: message, Cause: cause}
}
