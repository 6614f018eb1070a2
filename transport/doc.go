// Package transport is the seam between gofetch and the code that actually
// moves bytes over the network.
//
// A Transport receives a fully formed Request (method, absolute URL, flat
// header map, optional body bytes) and returns the complete Response or a
// send failure. Two implementations are provided:
//
//   - HTTP: net/http with a cloned default transport (the default)
//   - Resty: github.com/go-resty/resty/v2
//
// Tests and callers with special needs can plug in anything else through
// Func:
//
//	t := transport.Func(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
//	    return &transport.Response{StatusCode: 204}, nil
//	})
package transport
