package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/gofetch/codec"
	"github.com/kbukum/gofetch/errors"
)

func TestValidatorHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		wantErr bool
	}{
		{"valid", map[string]string{"X-Api-Key": "abc", "Accept": "application/json"}, false},
		{"empty value", map[string]string{"X-Empty": ""}, false},
		{"space in name", map[string]string{"Bad Name": "x"}, true},
		{"empty name", map[string]string{"": "x"}, true},
		{"newline in value", map[string]string{"X-Bad": "a\r\nInjected: 1"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := New().Headers("headers", tc.headers).Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.IsUnknown(err) {
				t.Errorf("expected UNKNOWN error, got %v", err)
			}
		})
	}
}

func TestValidatorContentType(t *testing.T) {
	xml := codec.TextXML
	bad := codec.ContentType(9)

	if New().ContentType("accept", nil).HasErrors() {
		t.Error("expected unset content type to be skipped")
	}
	if New().ContentType("accept", &xml).HasErrors() {
		t.Error("expected text/xml to be accepted")
	}
	v := New().ContentType("accept", &bad)
	if !v.HasErrors() {
		t.Fatal("expected out of range content type to be rejected")
	}
	if !strings.Contains(v.Errors()[0].Message, "application/x-www-form-urlencoded") {
		t.Errorf("expected message to list supported types, got %q", v.Errors()[0].Message)
	}
}

func TestValidatorChaining(t *testing.T) {
	bad := codec.ContentType(-1)
	v := New().
		HeaderName("header", "bad name").
		ContentType("content_type", &bad).
		HeaderName("header", "ok")
	if len(v.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(v.Errors()), v.Errors())
	}

	err := v.Validate()
	e, ok := errors.As(err)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if !strings.Contains(e.Message, "header: ") || !strings.Contains(e.Message, "content_type: must be one of") {
		t.Errorf("unexpected message %q", e.Message)
	}
	fields, ok := e.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected field details, got %v", e.Details["fields"])
	}
}

func TestValidatorValidate_NoErrors(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

type sampleConfig struct {
	BaseURL     string            `mapstructure:"base_url" validate:"required,url"`
	Accept      string            `mapstructure:"accept" validate:"omitempty,content_type"`
	Transport   string            `mapstructure:"transport" validate:"omitempty,oneof=http resty"`
	Headers     map[string]string `mapstructure:"headers" validate:"dive,keys,header_name,endkeys,header_value"`
	RequestID   string            `validate:"omitempty,header_name"`
	Attempts    int               `mapstructure:"attempts" validate:"min=0"`
	Certificate string            `mapstructure:"cert_file" validate:"required_with=Key"`
	Key         string            `mapstructure:"key_file"`
}

func TestStructValidateValid(t *testing.T) {
	cfg := sampleConfig{
		BaseURL:   "http://localhost:8080",
		Accept:    "application/xml",
		Transport: "resty",
		Headers:   map[string]string{"X-Tenant": "acme"},
		RequestID: "X-Request-Id",
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		cfg   sampleConfig
		field string
	}{
		{"missing base url", sampleConfig{}, "base_url"},
		{"bad accept", sampleConfig{BaseURL: "http://x", Accept: "text/html"}, "accept"},
		{"bad transport", sampleConfig{BaseURL: "http://x", Transport: "grpc"}, "transport"},
		{"bad header name", sampleConfig{BaseURL: "http://x", Headers: map[string]string{"a b": "c"}}, "headers"},
		{"bad header value", sampleConfig{BaseURL: "http://x", Headers: map[string]string{"X-A": "\n"}}, "headers"},
		{"bad request id header", sampleConfig{BaseURL: "http://x", RequestID: "x y"}, "request_i_d"},
		{"negative", sampleConfig{BaseURL: "http://x", Attempts: -1}, "attempts"},
		{"cert without key", sampleConfig{BaseURL: "http://x", Key: "k.pem"}, "cert_file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.IsUnknown(err) {
				t.Errorf("expected UNKNOWN error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("expected %q in %q", tc.field, err.Error())
			}
		})
	}
}

func TestStructValidateContentTypeValue(t *testing.T) {
	type negotiated struct {
		Accept codec.ContentType `mapstructure:"accept" validate:"content_type"`
	}
	if err := Validate(negotiated{Accept: codec.TextXML}); err != nil {
		t.Errorf("expected valid content type, got %v", err)
	}
	if err := Validate(negotiated{}); err != nil {
		t.Errorf("expected zero value (json) to be valid, got %v", err)
	}
	err := Validate(negotiated{Accept: codec.ContentType(9)})
	if err == nil || !strings.Contains(err.Error(), "accept") {
		t.Errorf("expected accept to be rejected, got %v", err)
	}
}

func TestStructValidateNotAStruct(t *testing.T) {
	if err := Validate("nope"); !errors.IsUnknown(err) {
		t.Errorf("expected UNKNOWN error, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"BaseURL":     "base_u_r_l",
		"ContentType": "content_type",
		"accept":      "accept",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
