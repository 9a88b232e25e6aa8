// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the error kinds the service surfaces:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ObjectNotFoundError: a record cannot be found
//   - InvalidStateError: a lifecycle operation from a state that forbids it
//   - ConflictError: an optimistic-concurrency collision
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Call sites classify errors with errors.Is against the sentinels, which is
// how the HTTP layer maps them to client-facing status codes.
package errs
