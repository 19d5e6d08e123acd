package order

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"pizzeria/internal/pkg/errs"
)

// MaxStatusLength is the longest status the order store can hold.
const MaxStatusLength = 64

// ErrClaimStatusIsPending is returned when a claim would leave the order pending.
var ErrClaimStatusIsPending = errs.NewValueIsInvalidErrorWithCause(
	"claim status is invalid",
	errors.New("claiming an order must move it out of pending"),
)

// Status is the lifecycle state of an order. The named values are the ones the
// kitchen uses; callers may store any other string as well.
//
//	pending ──claim──> in_progress ──> ready ──> completed
//
// Only the claim step is checked. Explicit status updates may jump anywhere,
// including back to pending.
type Status string

const (
	// Pending is the initial status; pending orders are waiting for the kitchen.
	Pending Status = "pending"

	// InProgress is the default status given to a claimed order.
	InProgress Status = "in_progress"

	// Ready means the pizza is out of the oven.
	Ready Status = "ready"

	// Completed means the order was handed over.
	Completed Status = "completed"
)

// Validate checks that the status fits the order store.
func (s Status) Validate() error {
	if n := utf8.RuneCountInString(string(s)); n > MaxStatusLength {
		return errs.NewValueIsOutOfRangeError("status length", n, 0, MaxStatusLength)
	}
	return nil
}

// IsPending reports whether the order is waiting for the kitchen.
func (s Status) IsPending() bool {
	return s == Pending
}

// IsKnown reports whether s is one of the named statuses.
func (s Status) IsKnown() bool {
	switch s {
	case Pending, InProgress, Ready, Completed:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Claim transitions a pending status to target.
//
// Returns:
//   - (target, nil) when s is Pending and target is a valid non-pending status
//   - ("", error) otherwise
func (s Status) Claim(target Status) (Status, error) {
	if !s.IsPending() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid status to claim", s.String()),
		)
	}
	if target.IsPending() {
		return "", ErrClaimStatusIsPending
	}
	if err := target.Validate(); err != nil {
		return "", err
	}
	return target, nil
}
