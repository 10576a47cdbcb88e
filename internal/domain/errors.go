package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrHostNotFound    = fmt.Errorf("%w: host not found", ErrValidation)
	ErrRuleNotFound    = errors.New("availability rule not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrSlotConflict     = errors.New("this time was just taken")
	ErrRuleOverlap      = errors.New("availability rule overlaps an existing rule")
	ErrBookingCancelled = errors.New("booking is already cancelled")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)
