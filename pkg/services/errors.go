package services

import (
	"errors"
	"fmt"

	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrUndefinedEventKind is returned when an event kind has no transition
	// entry. Programmer error, never retried.
	ErrUndefinedEventKind = errors.New("undefined event kind")

	// ErrOptimisticConflict is returned when an optimistic version check
	// fails after the retry budget is exhausted.
	ErrOptimisticConflict = errors.New("optimistic version conflict")

	// ErrConcurrentStateOverwrite is returned when the engine's post-write
	// state check observes a different state than it just wrote. Treated as
	// a data-corruption indicator.
	ErrConcurrentStateOverwrite = errors.New("concurrent state overwrite detected")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// InvalidEventCombinationError reports an event kind/subkind pair outside
// the permitted taxonomy. Rejected at entry, before any database work.
type InvalidEventCombinationError struct {
	Kind    lifecycle.EventKind
	SubKind *lifecycle.EventSubKind
}

func (e *InvalidEventCombinationError) Error() string {
	if e.SubKind == nil {
		return fmt.Sprintf("event kind '%s' requires a sub kind", e.Kind)
	}
	return fmt.Sprintf("sub kind '%s' is not permitted for event kind '%s'", *e.SubKind, e.Kind)
}

// IsInvalidEventCombination checks if an error is an event combination error
func IsInvalidEventCombination(err error) bool {
	var ce *InvalidEventCombinationError
	return errors.As(err, &ce)
}

// IllegalTransitionError reports an event applied while the bot is outside
// the transition's valid from-states. The message quotes API codes only;
// numeric state codes never reach callers.
type IllegalTransitionError struct {
	BotID     string
	Kind      lifecycle.EventKind
	FromState lifecycle.BotState
	ValidFrom []lifecycle.BotState
}

func (e *IllegalTransitionError) Error() string {
	codes := make([]string, 0, len(e.ValidFrom))
	for _, s := range e.ValidFrom {
		codes = append(codes, s.APICode())
	}
	return fmt.Sprintf("cannot apply event '%s' to bot %s in state '%s': valid from states are [%s]",
		e.Kind, e.BotID, e.FromState.APICode(), lifecycle.FormatStates(codes))
}

// IsIllegalTransition checks if an error is an illegal transition error
func IsIllegalTransition(err error) bool {
	var te *IllegalTransitionError
	return errors.As(err, &te)
}

// InvariantViolationError reports a broken recording pre-condition, e.g. an
// unexpected number of pending recordings when entering a recording state.
type InvariantViolationError struct {
	BotID   string
	State   lifecycle.BotState
	Message string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation for bot %s in state '%s': %s",
		e.BotID, e.State.APICode(), e.Message)
}

// IsInvariantViolation checks if an error is an invariant violation
func IsInvariantViolation(err error) bool {
	var ie *InvariantViolationError
	return errors.As(err, &ie)
}
