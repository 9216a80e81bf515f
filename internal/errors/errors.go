package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a request that clashes with the current state of a resource
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// GoneError represents a resource that existed but can no longer be used
type GoneError struct {
	Message string
}

func (e *GoneError) Error() string {
	return e.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors groups field errors produced by request validation
type ValidationErrors struct {
	Fields map[string]string
}

func (e *ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError represents a failure of a third-party service we depend on
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrInviteNotFound       = &NotFoundError{Entity: "invite"}
	ErrContactNotFound      = &NotFoundError{Entity: "contact"}
	ErrSequenceNotFound     = &NotFoundError{Entity: "sequence"}
	ErrVersionNotFound      = &NotFoundError{Entity: "sequence version"}
	ErrStepNotFound         = &NotFoundError{Entity: "sequence step"}
	ErrEnrollmentNotFound   = &NotFoundError{Entity: "enrollment"}
	ErrAssignmentNotFound   = &NotFoundError{Entity: "assignment"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrMuteNotFound         = &NotFoundError{Entity: "notification mute"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "membership", Context: "for this user in the organization"}
	ErrContactExists      = &AlreadyExistsError{Entity: "contact", Context: "with this email in the organization"}
	ErrDraftVersionExists = &AlreadyExistsError{Entity: "draft version", Context: "for this sequence"}
	ErrMuteExists         = &AlreadyExistsError{Entity: "notification mute", Context: "for this type and source"}
)

// State Conflict Errors
var (
	ErrVersionNotEditable   = &ConflictError{Message: "sequence version is not editable"}
	ErrVersionHasNoSteps    = &ConflictError{Message: "sequence version has no steps"}
	ErrSequenceNotPublished = &ConflictError{Message: "sequence has no published version"}
	ErrSequenceArchived     = &ConflictError{Message: "sequence is archived"}
	ErrLastOrgMember        = &ConflictError{Message: "organization must keep at least one active org member"}
	ErrInvalidTransition    = &ConflictError{Message: "operation is not allowed in the current state"}
)

// Gone Errors
var (
	ErrInviteExpired   = &GoneError{Message: "invite has expired"}
	ErrInviteRevoked   = &GoneError{Message: "invite has been revoked"}
	ErrInviteExhausted = &GoneError{Message: "invite has already been used"}
)

// Authentication / Authorization Errors
var (
	ErrUnauthenticated      = &AuthenticationError{Message: "authentication required"}
	ErrInvalidWebhookSecret = &AuthenticationError{Message: "invalid webhook secret"}
	ErrForbidden            = &AuthorizationError{Message: "you do not have permission to perform this action"}
	ErrRoleCannotInvite     = &AuthorizationError{Message: "your role cannot invite members with this role"}
	ErrContactNotVisible    = &AuthorizationError{Message: "one or more contacts are not accessible"}
)

// Configuration Errors
var (
	ErrWebhookSecretNotSet = &ConfigurationError{Message: "DIGEST_WEBHOOK_SECRET is not configured"}
	ErrInviteKeyNotSet     = &ConfigurationError{Message: "INVITE_SIGNING_KEY is not configured"}
)

// Business Logic Errors
var (
	ErrInvalidCursor           = errors.New("invalid cursor")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsConflict checks if an error is a ConflictError or an AlreadyExistsError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr) || IsAlreadyExists(err)
}

// IsGone checks if an error is a GoneError
func IsGone(err error) bool {
	var goneErr *GoneError
	return errors.As(err, &goneErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs *ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamError wraps a failure of an external service
func NewUpstreamError(service string, err error) error {
	return &UpstreamError{Service: service, Err: err}
}
