package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/gofetch/codec"
	"github.com/kbukum/gofetch/logger"
	"github.com/kbukum/gofetch/transport"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadSettings_YAML(t *testing.T) {
	path := writeSettings(t, "fetch.yaml", `
base_url: https://api.example.com/v1
client:
  timeout: 5s
  accept: application/xml
  content_type: application/x-www-form-urlencoded
  transport: resty
  request_id_header: X-Request-ID
  headers:
    X-Api-Key: secret
logger:
  level: debug
  format: console
`)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseURL != "https://api.example.com/v1" {
		t.Errorf("unexpected base url %q", s.BaseURL)
	}
	if s.Client.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout %s", s.Client.Timeout)
	}
	if s.Client.Accept != codec.ApplicationXML {
		t.Errorf("unexpected accept %v", s.Client.Accept)
	}
	if s.Client.ContentType != codec.URLEncoded {
		t.Errorf("unexpected content type %v", s.Client.ContentType)
	}
	if s.Client.Transport != transport.KindResty {
		t.Errorf("unexpected transport %q", s.Client.Transport)
	}
	if s.Client.RequestIDHeader != "X-Request-ID" {
		t.Errorf("unexpected request id header %q", s.Client.RequestIDHeader)
	}
	if len(s.Client.Headers) != 1 {
		t.Fatalf("unexpected headers %v", s.Client.Headers)
	}
	for k, v := range s.Client.Headers {
		if !strings.EqualFold(k, "X-Api-Key") || v != "secret" {
			t.Errorf("unexpected header %s=%s", k, v)
		}
	}
	if s.Logger.Level != "debug" || s.Logger.Format != logger.FormatConsole {
		t.Errorf("unexpected logger config %+v", s.Logger)
	}
}

func TestLoadSettings_JSON(t *testing.T) {
	path := writeSettings(t, "fetch.json", `{
  "base_url": "http://localhost:8080",
  "client": {"timeout": "250ms", "tls": {"server_name": "api.internal"}}
}`)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Client.Timeout != 250*time.Millisecond {
		t.Errorf("unexpected timeout %s", s.Client.Timeout)
	}
	if s.Client.TLS == nil || s.Client.TLS.ServerName != "api.internal" {
		t.Errorf("unexpected tls config %+v", s.Client.TLS)
	}
	if s.Client.Accept != codec.JSON {
		t.Errorf("expected json default, got %v", s.Client.Accept)
	}
}

func TestLoadSettings_MillisecondTimeout(t *testing.T) {
	path := writeSettings(t, "fetch.yaml", "base_url: http://localhost\nclient:\n  timeout: 5000\n")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Client.Timeout != 5*time.Second {
		t.Errorf("expected a bare number to be read as milliseconds, got %s", s.Client.Timeout)
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing base url", "client:\n  timeout: 1s\n"},
		{"unknown content type", "base_url: http://h\nclient:\n  accept: application/jsn\n"},
		{"bad transport", "base_url: http://h\nclient:\n  transport: grpc\n"},
		{"bad timeout", "base_url: http://h\nclient:\n  timeout: soon\n"},
		{"bad logger level", "base_url: http://h\nlogger:\n  level: loud\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSettings(writeSettings(t, "fetch.yaml", tc.content))
			if !IsUnknown(err) {
				t.Errorf("expected unknown error, got %v", err)
			}
		})
	}

	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); !IsUnknown(err) {
		t.Errorf("expected unknown error for a missing file, got %v", err)
	}
}

func TestNewFromSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			t.Errorf("expected settings header, got %q", r.Header.Get("X-Api-Key"))
		}
		writeJSON(w, http.StatusOK, toReturn{Item1: "ok"})
	}))
	defer srv.Close()

	s := &Settings{
		BaseURL: srv.URL,
		Client:  Config{Headers: map[string]string{"x-api-key": "secret"}},
		Logger:  logger.Config{Level: "disabled"},
	}
	c, err := NewFromSettings(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	resp, err := Get[toReturn](context.Background(), c, "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Body.Item1 != "ok" {
		t.Errorf("unexpected body %+v", resp.Body)
	}
}

func TestNewFromSettings_Errors(t *testing.T) {
	if _, err := NewFromSettings(nil); !IsUnknown(err) {
		t.Errorf("expected unknown error for nil settings, got %v", err)
	}
	if _, err := NewFromSettings(&Settings{}); !IsUnknown(err) {
		t.Errorf("expected unknown error for empty settings, got %v", err)
	}
	if _, err := NewFromSettings(&Settings{BaseURL: "localhost"}); !IsInvalidURL(err) {
		t.Errorf("expected invalid url error, got %v", err)
	}
	bad := &Settings{BaseURL: "http://h", Logger: logger.Config{Format: "xml"}}
	if _, err := NewFromSettings(bad); !IsUnknown(err) {
		t.Errorf("expected unknown error for bad logger format, got %v", err)
	}
}
