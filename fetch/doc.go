// Package fetch is a small HTTP client for JSON, XML and URL-encoded APIs.
//
// A Client is bound to one base URL. Each call joins a path onto it, merges
// the client's default headers with per-call overrides, encodes the body for
// the negotiated content type, sends it, and decodes the response body into
// the requested type:
//
//	client, err := fetch.New("https://api.example.com/v1", &fetch.Config{
//	    Timeout: 5 * time.Second,
//	    Headers: map[string]string{"X-Api-Key": key},
//	})
//
//	resp, err := fetch.Get[User](ctx, client, "users/42",
//	    fetch.WithQueryParam("expand", "teams"),
//	)
//
//	created, err := fetch.Post[User](ctx, client, "users", newUser,
//	    fetch.WithContentType(codec.ApplicationXML),
//	)
//
// # Headers
//
// Header names are case-insensitive and stored in canonical form. Every
// request carries User-Agent, Content-Type and Accept. Content-Type and
// Accept resolve independently: call option, then client Config, then JSON.
//
// # Responses
//
// A 4xx or 5xx status fails the call with a NETWORK_ERROR carrying the
// status, headers and body text. The body is never decoded in that case.
// Otherwise the body is decoded with the codec named by the response
// Content-Type header. Unknown or missing content types are decoded as JSON.
// An empty body leaves Response.Body nil.
//
// # Query parameters
//
// Parameters are appended in the order given as key=value pairs without any
// percent-encoding. Encode values beforehand (url.QueryEscape) when they may
// contain reserved characters.
package fetch
