// Package observability instruments gofetch calls with OpenTelemetry.
//
// Every call gets a client span named "HTTP <METHOD>", W3C trace context is
// injected into the outgoing headers, and the call duration is recorded on
// the http.client.request.duration histogram.
//
// The package never installs exporters. Providers and the propagator come
// from the caller or from the otel globals:
//
//	inst, err := observability.New(tp, mp, nil)
//
//	ctx, call := inst.Start(ctx, "GET", u)
//	call.Inject(ctx, headers)
//	...
//	call.End(statusCode, errorType, err)
package observability
