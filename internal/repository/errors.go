// Package repository contains data access logic separated from HTTP handlers.
// Sentinel errors defined here let handlers map store outcomes to HTTP
// status codes without depending on the MongoDB driver.
package repository

import "errors"

// ErrMovieNotFound is returned when no movie matches a lookup.  Handlers
// translate it into a 404 response, except for updates.
var ErrMovieNotFound = errors.New("movie not found")
