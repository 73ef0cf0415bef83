package kernel

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a shipping address as an immutable value object.
// An order's delivery carries a copy of the member's address taken at order
// time, so later address changes never affect orders already placed.
// The zero value is invalid and fails validation; use NewAddress.
type Address struct { //nolint:recvcheck //using for validation
	city    string
	street  string
	zipcode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. All three components are required.
func NewAddress(city, street, zipcode string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setCity(city),
		address.setStreet(street),
		address.setZipcode(zipcode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// City returns the city component.
func (a Address) City() string {
	return a.city
}

// Street returns the street component.
func (a Address) Street() string {
	return a.street
}

// Zipcode returns the postal-code component.
func (a Address) Zipcode() string {
	return a.zipcode
}

// IsEqual reports whether two addresses have identical components.
func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.street == other.street && a.zipcode == other.zipcode
}

// String returns a single-line human-readable form, mainly for logs.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.street, a.city, a.zipcode)
}

// Validate checks that the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setZipcode(zipcode string) error {
	if zipcode == "" {
		return errs.NewValueIsRequiredError("zipcode")
	}
	a.zipcode = zipcode
	return nil
}
