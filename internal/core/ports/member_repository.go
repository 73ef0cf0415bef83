// Package ports defines the persistence contracts consumed by the application
// layer. These interfaces establish the boundary between the domain and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for member aggregates.
type MemberRepository interface {
	// Add persists a new member aggregate to storage.
	Add(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)
}
