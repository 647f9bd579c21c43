// Package errs provides standardized error types for the game store.
//
// Field-level errors describe a single broken rule:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//
// Request-level errors classify how a failed operation is surfaced:
//   - ValidationError: input broke shape or range rules; carries every message
//   - ConflictError: uniqueness, overlap or pricing rule violated
//   - ObjectNotFoundError: a referenced entity does not exist
//   - FatalInconsistencyError: a required write did not land, or the identity
//     and domain stores diverged
//
// Every type unwraps to a sentinel (ErrValidation, ErrConflict, ...) so callers
// classify with errors.Is and inspect details with errors.As.
package errs
