// Package errors provides custom error types for the gtfsmerge system.
// These errors enable programmatic error checking (fatal configuration
// problems versus per-table failures) and carry enough context to
// report which feed, table, or file caused a failure.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
var As = errors.As

// Common sentinel errors for the gtfsmerge system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfiguration indicates the merge was invoked with arguments
	// that can never succeed (missing paths, output nested inside input).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNoHeaderFound indicates every candidate file for a table had an
	// empty or missing first row
	ErrNoHeaderFound = errors.New("no header found")

	// ErrNoFeedsFound indicates the input root contains no feed directories
	ErrNoFeedsFound = errors.New("no feeds found")

	// ErrNoArchivesFound indicates the input root contains no feed archives
	ErrNoArchivesFound = errors.New("no archives found")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a fatal configuration error. The caller must fix
// its arguments and re-invoke; it is never retried.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// NoHeaderError reports a table whose candidate files all lacked a header row.
type NoHeaderError struct {
	Table string
	Files []string
}

// Error implements the error interface
func (e *NoHeaderError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("no valid header found for %s in %d file(s): %s",
			e.Table, len(e.Files), strings.Join(e.Files, ", "))
	}
	return fmt.Sprintf("no valid header found in %d file(s)", len(e.Files))
}

// Is implements errors.Is support
func (e *NoHeaderError) Is(target error) bool {
	return target == ErrNoHeaderFound
}

// NewNoHeaderError creates a new NoHeaderError
func NewNoHeaderError(table string, files []string) *NoHeaderError {
	return &NoHeaderError{Table: table, Files: files}
}

// MergeError represents a failure while merging one table across feeds
type MergeError struct {
	Table string
	Feeds []string
	Err   error
}

// Error implements the error interface
func (e *MergeError) Error() string {
	if len(e.Feeds) > 0 {
		return fmt.Sprintf("merge error for %s across %d feed(s): %v", e.Table, len(e.Feeds), e.Err)
	}
	return fmt.Sprintf("merge error for %s: %v", e.Table, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError
func NewMergeError(table string, feeds []string, err error) *MergeError {
	return &MergeError{
		Table: table,
		Feeds: feeds,
		Err:   err,
	}
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConfigError checks if an error is a fatal configuration error
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

// IsNoHeader checks if an error reports a table without any header row
func IsNoHeader(err error) bool {
	return errors.Is(err, ErrNoHeaderFound)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "zip", "yaml"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close", "mkdir"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "merge", "expand", "discover", "write"
	Resource  string // "feed", "archive", "table", "config"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
