package fetch

import (
	"testing"

	"github.com/kbukum/gofetch/errors"
)

func TestBuildURL_Join(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"leading slash", "http://localhost", "/v1/signup", "http://localhost/v1/signup"},
		{"no leading slash", "http://localhost", "v1/signup", "http://localhost/v1/signup"},
		{"both slashes", "http://h/", "/v1", "http://h/v1"},
		{"trailing slash only", "http://h/", "v1", "http://h/v1"},
		{"base with path", "https://api.example.com/v2", "users/1", "https://api.example.com/v2/users/1"},
		{"base with port", "http://127.0.0.1:8080/", "/health", "http://127.0.0.1:8080/health"},
		{"empty path", "http://h", "", "http://h/"},
		{"path keeps trailing slash", "http://h", "items/", "http://h/items/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := buildURL(tc.base, tc.path, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := u.String(); got != tc.want {
				t.Errorf("buildURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
			}
		})
	}
}

func TestBuildURL_Params(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		params []Param
		want   string
	}{
		{"single", "/v1/signup", []Param{{"param1", "testParam1"}}, "http://localhost/v1/signup?param1=testParam1"},
		{"order preserved", "/q", []Param{{"z", "1"}, {"a", "2"}, {"m", "3"}}, "http://localhost/q?z=1&a=2&m=3"},
		{"duplicate keys", "/q", []Param{{"k", "1"}, {"k", "2"}}, "http://localhost/q?k=1&k=2"},
		{"empty set", "/q", []Param{}, "http://localhost/q"},
		{"path with query", "/q?fixed=1", []Param{{"extra", "2"}}, "http://localhost/q?fixed=1&extra=2"},
		{"value not encoded", "/q", []Param{{"ids", "1,2"}}, "http://localhost/q?ids=1,2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := buildURL("http://localhost", tc.path, tc.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := u.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
	}{
		{"missing scheme", "localhost", "v1"},
		{"host with port but no scheme", "localhost:8080", "v1"},
		{"missing host", "http://", "v1"},
		{"control character", "http://h", "v1\x7f"},
		{"bad escape", "http://h", "%zz"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildURL(tc.base, tc.path, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := errors.As(err)
			if !ok || e.Code != errors.ErrCodeInvalidURL {
				t.Fatalf("expected INVALID_URL, got %v", err)
			}
			if e.URL == "" {
				t.Error("expected offending url to be kept")
			}
		})
	}
}
