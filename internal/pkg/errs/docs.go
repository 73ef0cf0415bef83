// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for message formatting and Unwrap() for errors.Is support
//
// The sentinel errors are part of the application's error taxonomy:
// ObjectNotFound covers unresolved identifiers at the persistence boundary,
// ValueIsInvalid/ValueIsRequired/ValueIsOutOfRange cover input validation in
// domain constructors, and VersionIsInvalid covers optimistic concurrency
// conflicts on aggregate updates.
package errs
