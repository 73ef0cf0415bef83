package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetMemberOrdersQueryIsNotConstructed = errors.New(
		"GetMemberOrdersQuery must be created via NewGetMemberOrdersQuery constructor",
	)
)

// GetMemberOrdersQuery retrieves the order history of one member,
// newest orders first.
type GetMemberOrdersQuery struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMemberOrdersQuery creates a query for the given member's orders.
func NewGetMemberOrdersQuery(memberID kernel.UUID) (GetMemberOrdersQuery, error) {
	if err := memberID.Validate(); err != nil {
		return GetMemberOrdersQuery{}, err
	}

	return GetMemberOrdersQuery{
		memberID: memberID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMemberOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMemberOrdersQueryIsNotConstructed)
}

// MemberID returns the identifier of the member whose orders are retrieved.
func (q GetMemberOrdersQuery) MemberID() kernel.UUID {
	return q.memberID
}

// GetMemberOrdersQueryResponse represents one order in a member's history.
type GetMemberOrdersQueryResponse struct {
	ID         kernel.UUID
	Status     string
	OrderDate  time.Time
	TotalPrice int
}
