package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──cancel──> Cancelled
//
// Cancelled is terminal; there is no transition out of it. Status is a value
// object that validates transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when an order is created.
	Placed

	// Cancelled indicates the order has been cancelled and its stock
	// restored. This is a final state with no further transitions.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "Placed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Placed and Cancelled; Unknown (0) and any other values
// are invalid. Used to vet Status values coming from external sources such as
// the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Placed -> Cancelled
//
// Invalid transitions:
//   - Cancelled -> Cancelled (returns ErrOrderAlreadyCancelled; a repeating
//     cancellation must never re-run the stock restoration)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns (Cancelled, nil) on a valid transition, (0, error) otherwise.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Placed:
		return Cancelled, nil
	case Cancelled:
		return 0, ErrOrderAlreadyCancelled
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
}
