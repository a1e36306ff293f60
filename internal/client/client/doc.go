// Package client talks to the blog list HTTP API and opens the CLI's local
// SQLite database.
//
// Transport failures are reported as ErrUnavailable. Error answers of the
// API are mapped onto ErrUnauthorized, ErrForbidden, ErrNotFound or a
// generic *APIError, each carrying the server's message.
package client
