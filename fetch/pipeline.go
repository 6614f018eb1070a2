package fetch

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/gofetch/codec"
	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/logger"
	"github.com/kbukum/gofetch/observability"
	"github.com/kbukum/gofetch/transport"
	"github.com/kbukum/gofetch/validation"
)

// Get sends a GET request and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodGet, path, nil, opts)
}

// Post sends a POST request. A nil body sends no body.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPost, path, body, opts)
}

// Put sends a PUT request. A nil body sends no body.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPut, path, body, opts)
}

// Patch sends a PATCH request. A nil body sends no body.
func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPatch, path, body, opts)
}

// Delete sends a DELETE request. A nil body sends no body.
func Delete[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodDelete, path, body, opts)
}

// do runs one call: build URL, merge headers, encode, send, classify, decode.
func do[T any](ctx context.Context, c *Client, method, path string, body any, opts []RequestOption) (*Response[T], error) {
	snap := c.state.Load()
	o := resolveOptions(opts)
	log := c.log.WithContext(ctx)

	if err := validation.New().
		Headers("headers", o.Headers).
		ContentType("accept", o.Accept).
		ContentType("content_type", o.ContentType).
		Validate(); err != nil {
		logFailure(log, method, nil, err)
		return nil, err
	}

	u, err := buildURL(c.baseURL, path, o.Params)
	if err != nil {
		logFailure(log, method, nil, err)
		return nil, err
	}

	eff := merge(&snap.config, &o)

	var payload []byte
	if body != nil {
		payload, err = codec.Marshal(body, eff.contentType)
		if err != nil {
			logFailure(log, method, u, err)
			return nil, err
		}
		eff.headers[HeaderContentType] = eff.contentType.String()
	}

	requestID := stampRequestID(eff.headers, snap.config.RequestIDHeader)

	ctx, call := c.inst.Start(ctx, method, u)
	if requestID != "" {
		call.SetAttributes(attribute.String(observability.AttrRequestID, requestID))
	}
	call.Inject(ctx, eff.headers)

	start := time.Now()
	raw, err := snap.transport.Send(ctx, &transport.Request{
		Method: method,
		URL:    u,
		Header: eff.headers,
		Body:   payload,
	})
	if err != nil {
		ferr := errors.UnableToSendRequest(err)
		finish(call, 0, ferr)
		logFailure(log, method, u, ferr)
		return nil, ferr
	}

	if err := classify(raw); err != nil {
		finish(call, raw.StatusCode, err)
		logFailure(log, method, u, err)
		return nil, err
	}

	resp := &Response[T]{
		RawBody:    raw.Body,
		StatusCode: raw.StatusCode,
		Headers:    raw.Header,
		RemoteAddr: raw.RemoteAddr,
	}

	if o.DecodeBody && len(raw.Body) > 0 {
		ct := codec.FromHeader(lookupHeader(raw.Header, HeaderContentType))
		var v T
		if err := codec.Unmarshal(raw.Body, ct, &v); err != nil {
			finish(call, raw.StatusCode, err)
			logFailure(log, method, u, err)
			return nil, err
		}
		resp.Body = &v
	}

	finish(call, raw.StatusCode, nil)
	log.Debug("request completed", logger.Fields(
		logger.FieldMethod, method,
		logger.FieldURL, u.Redacted(),
		logger.FieldStatus, raw.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
		logger.FieldContentType, lookupHeader(raw.Header, HeaderContentType),
	))
	return resp, nil
}

// stampRequestID sets header to a new UUID unless the caller already set it.
func stampRequestID(headers map[string]string, header string) string {
	if header == "" {
		return ""
	}
	key := http.CanonicalHeaderKey(header)
	if v, ok := headers[key]; ok {
		return v
	}
	id := uuid.NewString()
	headers[key] = id
	return id
}

func finish(call *observability.Call, status int, err error) {
	var code string
	if e, ok := errors.As(err); ok {
		code = e.Code.String()
	}
	call.End(status, code, err)
}

func logFailure(log *logger.Logger, method string, u *url.URL, err error) {
	fields := logger.Fields(logger.FieldMethod, method)
	if u != nil {
		fields[logger.FieldURL] = u.Redacted()
	}
	if e, ok := errors.As(err); ok {
		fields[logger.FieldErrorCode] = e.Code.String()
		if e.StatusCode > 0 {
			fields[logger.FieldStatus] = e.StatusCode
		}
	}
	log.Debug("request failed", logger.MergeWithError(fields, err))
}
