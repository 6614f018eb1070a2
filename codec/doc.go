// Package codec implements content negotiation for gofetch: the closed set of
// supported content types and the body codecs that encode request values and
// decode response bytes for each of them.
//
// Unknown remote content types are optimistically treated as JSON. This keeps
// calls against loosely configured servers working, but it can also hide a
// server that declares the wrong type; callers that care should inspect the
// response headers themselves.
//
//	data, err := codec.Marshal(user, codec.JSON)
//	err = codec.Unmarshal(body, codec.Parse(resp.Header("Content-Type")), &user)
package codec
