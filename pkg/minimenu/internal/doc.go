// Package internal holds engine plumbing shared by the minimenu packages:
// the slog loggers and the inset geometry used by indicator styles.
// Types and functions in this package are not part of the public API.
package internal
