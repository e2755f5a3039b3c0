package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Invariant errors: reaching these is a defect in the caller
	ErrUnknownContext  = errors.New("unrecognized quarter context")
	ErrUnknownMoveType = errors.New("unrecognized move type")
	ErrNegativeCount   = errors.New("negative base count")

	// Input errors
	ErrUnknownBase = errors.New("unrecognized base identity")

	// Settings errors
	ErrMissingSetting    = errors.New("required setting missing")
	ErrSettingOutOfRange = errors.New("setting out of range")
	ErrSettingType       = errors.New("setting has wrong type")
)

// Error constructors with context
func NewUnknownContextError(left, right fmt.Stringer) error {
	return fmt.Errorf("%w: (%v, %v)", ErrUnknownContext, left, right)
}

func NewNegativeCountError(context fmt.Stringer, count fmt.Stringer) error {
	return fmt.Errorf("%w: %v %v", ErrNegativeCount, context, count)
}

func NewMissingSettingError(key string) error {
	return fmt.Errorf("%w: %s", ErrMissingSetting, key)
}

func NewOutOfRangeError(key string, value interface{}, reason string) error {
	return fmt.Errorf("%w: %s=%v %s", ErrSettingOutOfRange, key, value, reason)
}

func NewSettingTypeError(key string, want string) error {
	return fmt.Errorf("%w: %s is not a %s", ErrSettingType, key, want)
}

// Error checking helpers
func IsInvariantError(err error) bool {
	return errors.Is(err, ErrUnknownContext) ||
		errors.Is(err, ErrUnknownMoveType) ||
		errors.Is(err, ErrNegativeCount)
}

func IsSettingsError(err error) bool {
	return errors.Is(err, ErrMissingSetting) ||
		errors.Is(err, ErrSettingOutOfRange) ||
		errors.Is(err, ErrSettingType)
}
