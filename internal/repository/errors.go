// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow handlers to distinguish
// failure scenarios: a missing casting call renders an inline not-found
// message, while any other database error degrades the listing to an
// empty collection.
package repository

import "errors"

// ErrCastingCallNotFound is returned when no row matches the requested
// slug. Handlers translate this into an HTTP 404 response.
var ErrCastingCallNotFound = errors.New("casting call not found")
