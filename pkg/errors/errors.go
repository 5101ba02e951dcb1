// Package errors provides custom error types for the projmap system.
// These errors enable programmatic error checking and carry the
// identifiers needed to name the offending entity when a run aborts.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the projmap system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrTokenRequired indicates that a personal access token is
	// required but not provided
	ErrTokenRequired = errors.New("personal access token required")

	// ErrInconsistentSnapshot indicates that the two project collections
	// do not describe the same server snapshot
	ErrInconsistentSnapshot = errors.New("inconsistent snapshot")

	// ErrServerUnavailable indicates that the server is temporarily unavailable
	ErrServerUnavailable = errors.New("server unavailable")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ProjectJoinError reports a portal project whose LUID has no matching
// REST API project. It indicates the two collections were not taken
// from the same snapshot.
type ProjectJoinError struct {
	LUID string
}

// Error implements the error interface
func (e *ProjectJoinError) Error() string {
	return fmt.Sprintf("project with luid %s has no matching REST project", e.LUID)
}

// Is implements errors.Is support
func (e *ProjectJoinError) Is(target error) bool {
	return target == ErrInconsistentSnapshot || target == ErrNotFound
}

// UnknownOwnerError reports a project whose owner ID has no matching
// user record.
type UnknownOwnerError struct {
	ProjectID string
	OwnerID   string
}

// Error implements the error interface
func (e *UnknownOwnerError) Error() string {
	return fmt.Sprintf("project %s references unknown owner %s", e.ProjectID, e.OwnerID)
}

// Is implements errors.Is support
func (e *UnknownOwnerError) Is(target error) bool {
	return target == ErrInconsistentSnapshot || target == ErrNotFound
}

// HierarchyError reports a parent chain that does not terminate at a
// top-level project: either a parent ID that resolves to nothing, or a
// cycle that exhausts the walk bound.
type HierarchyError struct {
	ProjectID string
	ParentID  string
	Steps     int
	Message   string
}

// Error implements the error interface
func (e *HierarchyError) Error() string {
	if e.ParentID != "" {
		return fmt.Sprintf("broken hierarchy at project %s: %s (parent %s, after %d steps)",
			e.ProjectID, e.Message, e.ParentID, e.Steps)
	}
	return fmt.Sprintf("broken hierarchy at project %s: %s (after %d steps)",
		e.ProjectID, e.Message, e.Steps)
}

// Is implements errors.Is support
func (e *HierarchyError) Is(target error) bool {
	return target == ErrInconsistentSnapshot
}

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

// APIError represents an error response from a server API
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode >= 500 {
		return target == ErrServerUnavailable
	}
	return false
}

// AuthenticationError represents a sign-in or session failure
type AuthenticationError struct {
	Server  string
	Method  string // "pat", "session"
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Server != "" {
		return fmt.Sprintf("authentication error for %s (%s): %s", e.Server, e.Method, e.Message)
	}
	return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrTokenRequired
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse error in %s from %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInconsistentSnapshot checks if an error indicates the two source
// collections disagree
func IsInconsistentSnapshot(err error) bool {
	return errors.Is(err, ErrInconsistentSnapshot)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTokenError checks if an error is related to access tokens
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenRequired)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Source: source, Message: err.Error(), Err: err}
}

// WrapAPI wraps an error as an APIError
func WrapAPI(endpoint string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}
