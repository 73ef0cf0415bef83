// Package order provides the order aggregate of the shop domain: the Order
// root together with its OrderLine snapshots and Delivery record, and the
// state machines that govern cancellation.
//
// Key business rules:
//   - Orders are assembled only through NewOrder, which links member<->order,
//     order<->delivery and order<->line in one atomic construction step
//   - Order lines snapshot the unit price at purchase time and deduct item
//     stock on creation
//   - Cancellation is blocked once the delivery is completed, cascades a
//     stock restoration to every line, and is itself terminal: cancelling an
//     already-cancelled order is an error, not a repeated restock
//   - TotalPrice is a pure derived query over the owned lines
//
// The package follows Domain-Driven Design principles: private fields,
// validated factory functions, and Restore constructors for reconstruction
// from persistence.
package order
