// Package errs provides standardized error types for the requisitions application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError),
//     all of which also match the ErrValidation class via errors.Is
//   - Lifecycle errors (ConfigurationError, ForbiddenError, InvalidTransitionError,
//     AlreadyFinalError) and ObjectNotFoundError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Messages always name the rule that was violated, so the HTTP layer can pass
// them to staff unchanged.
package errs
