package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DeliveryStatus represents the shipment state of an order's delivery.
//
// State transitions:
//
//	DeliveryReady ──complete──> DeliveryComp
//
// DeliveryComp (completed) is terminal. A completed delivery blocks order
// cancellation.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryReady is the initial status: the shipment has not left yet.
	DeliveryReady

	// DeliveryComp indicates the shipment has been delivered.
	DeliveryComp
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown: "Unknown",
		DeliveryReady:   "Ready",
		DeliveryComp:    "Comp",
	}
}

// Validate checks if the DeliveryStatus value is valid.
// Valid statuses are DeliveryReady and DeliveryComp.
func (s DeliveryStatus) Validate() error {
	if s != DeliveryReady && s != DeliveryComp {
		return errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the human-readable name of the delivery status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the delivery status to DeliveryComp.
// Only DeliveryReady can transition; completing an already completed or
// uninitialized delivery fails.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != DeliveryReady {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return DeliveryComp, nil
}
