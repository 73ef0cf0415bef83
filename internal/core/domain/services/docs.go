// Package services provides domain services that orchestrate business operations
// across multiple domain entities. It implements workflows that don't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - OrderFactory: a domain service assembling an order aggregate from a
//     member, an item and a requested quantity
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
