// Package errs provides the typed errors shared by every layer of the
// marketplace.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrIllegalTransition) usable with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The HTTP adapter maps the sentinels onto status codes, so callers never
// need to inspect message text.
package errs
