// Package component runs long-lived pieces, such as gofetch clients, under a
// shared Start/Stop/Health lifecycle.
//
// A Registry starts components in registration order, stops them in reverse
// and rolls back on a failed start. Lazy wraps one-time initialization that
// is retried after a failure.
package component
