// Package errors defines the error taxonomy shared by every gofetch package.
// A single *Error type carries a machine-readable ErrorCode plus the
// diagnostic detail relevant to that code (offending URL, codec name,
// response status, headers and body).
package errors
