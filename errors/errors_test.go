package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_InvalidURL(t *testing.T) {
	cause := fmt.Errorf("missing scheme")
	err := InvalidURL("localhost/v1", cause)
	if err.Code != ErrCodeInvalidURL {
		t.Errorf("expected INVALID_URL, got %s", err.Code)
	}
	if err.URL != "localhost/v1" {
		t.Errorf("expected url to be kept, got %q", err.URL)
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Serialization(t *testing.T) {
	err := Serialization("json", fmt.Errorf("unsupported type"))
	if err.Code != ErrCodeSerialization {
		t.Errorf("expected SERIALIZATION_ERROR, got %s", err.Code)
	}
	if err.Codec != "json" {
		t.Errorf("expected codec json, got %q", err.Codec)
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestError_InvalidEncoding(t *testing.T) {
	err := InvalidEncoding("xml")
	if err.Code != ErrCodeDeserialization {
		t.Errorf("expected DESERIALIZATION_ERROR, got %s", err.Code)
	}
	if !IsInvalidEncoding(err) {
		t.Error("expected IsInvalidEncoding to be true")
	}
	if !stderrors.Is(err, ErrInvalidEncoding) {
		t.Error("expected cause to be ErrInvalidEncoding")
	}

	plain := Deserialization("xml", fmt.Errorf("unexpected EOF"))
	if IsInvalidEncoding(plain) {
		t.Error("structural decode failure should not be reported as invalid encoding")
	}
}

func TestError_Network(t *testing.T) {
	headers := map[string]string{"Content-Type": "application/json"}
	err := Network(404, headers, []byte(`{"error":"missing"}`))
	if err.StatusCode != 404 {
		t.Errorf("expected 404, got %d", err.StatusCode)
	}
	if err.Body != `{"error":"missing"}` {
		t.Errorf("expected body text to be kept, got %q", err.Body)
	}
	if err.Headers["Content-Type"] != "application/json" {
		t.Error("expected headers to be kept")
	}
	if !strings.Contains(err.Error(), "HTTP 404 Not Found") {
		t.Errorf("expected status in message, got %q", err.Error())
	}
}

func TestError_UnableToSendRequest(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := UnableToSendRequest(cause)
	if err.Message != cause.Error() {
		t.Errorf("expected transport message, got %q", err.Message)
	}

	if got := UnableToSendRequest(nil).Message; got != "unable to send request" {
		t.Errorf("expected default message, got %q", got)
	}
}

func TestError_WithDetail(t *testing.T) {
	err := Unknown("bad config", nil).WithDetail("field", "timeout")
	if err.Details["field"] != "timeout" {
		t.Errorf("expected field=timeout, got %v", err.Details["field"])
	}
	err.WithDetail("field", "headers")
	if err.Details["field"] != "headers" {
		t.Error("expected detail to be overwritten")
	}
}

func TestError_Error_Format(t *testing.T) {
	err := Unknown("build failed", nil)
	if got := err.Error(); got != "UNKNOWN: build failed" {
		t.Errorf("unexpected format %q", got)
	}
}

func TestPredicates_Table(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"IsInvalidURL", InvalidURL("x", nil), IsInvalidURL},
		{"IsSerialization", Serialization("xml", nil), IsSerialization},
		{"IsDeserialization", Deserialization("json", nil), IsDeserialization},
		{"IsUnableToSendRequest", UnableToSendRequest(nil), IsUnableToSendRequest},
		{"IsNetwork", Network(500, nil, nil), IsNetwork},
		{"IsUnknown", Unknown("x", nil), IsUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.check(tc.err) {
				t.Errorf("%s(%v) = false, want true", tc.name, tc.err)
			}
			wrapped := fmt.Errorf("outer: %w", tc.err)
			if !tc.check(wrapped) {
				t.Errorf("%s should see through wrapping", tc.name)
			}
			if tc.check(fmt.Errorf("plain")) {
				t.Errorf("%s should be false for a plain error", tc.name)
			}
		})
	}
}

func TestAs(t *testing.T) {
	orig := Network(503, nil, nil)
	got, ok := As(fmt.Errorf("wrap: %w", orig))
	if !ok {
		t.Fatal("expected As to succeed for wrapped Error")
	}
	if got != orig {
		t.Error("expected As to return the original error")
	}

	if _, ok := As(fmt.Errorf("not ours")); ok {
		t.Error("expected As to fail for a foreign error")
	}
}
