package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/gofetch/component"
	"github.com/kbukum/gofetch/logger"
)

func TestComponent_Lifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toReturn{Item1: "pong"})
	}))
	defer srv.Close()

	comp := NewComponent("billing-api", Settings{
		BaseURL: srv.URL,
		Logger:  logger.Config{Level: "disabled"},
	})
	reg := component.NewRegistry(nil)
	if err := reg.Register(comp); err != nil {
		t.Fatalf("register: %v", err)
	}

	if comp.Client() != nil {
		t.Error("expected no client before start")
	}
	if h := comp.Health(context.Background()); h.Status != component.StatusUnhealthy {
		t.Errorf("expected unhealthy before start, got %s", h.Status)
	}

	if err := reg.StartAll(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	c := comp.Client()
	if c == nil {
		t.Fatal("expected client after start")
	}
	resp, err := Get[toReturn](context.Background(), c, "/ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Body.Item1 != "pong" {
		t.Errorf("unexpected body %+v", resp.Body)
	}

	for _, h := range reg.HealthAll(context.Background()) {
		if h.Name != "billing-api" || h.Status != component.StatusHealthy {
			t.Errorf("unexpected health %+v", h)
		}
	}

	if err := reg.StopAll(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if comp.Client() != nil {
		t.Error("expected client to be released after stop")
	}
}

func TestComponent_StartFailure(t *testing.T) {
	comp := NewComponent("users-api", Settings{BaseURL: "users.internal"})
	reg := component.NewRegistry(nil)
	if err := reg.Register(comp); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := reg.StartAll(context.Background())
	if err == nil {
		t.Fatal("expected start to fail")
	}
	if !IsInvalidURL(err) {
		t.Errorf("expected invalid url cause, got %v", err)
	}
	h := comp.Health(context.Background())
	if h.Status != component.StatusUnhealthy {
		t.Errorf("expected unhealthy, got %s", h.Status)
	}
	if !strings.Contains(h.Message, "users.internal") {
		t.Errorf("expected last error in message, got %q", h.Message)
	}
}

func TestComponent_Describe(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		details  string
		port     int
	}{
		{
			"defaults",
			Settings{BaseURL: "https://api.example.com"},
			"https://api.example.com transport=http",
			443,
		},
		{
			"explicit port and timeout",
			Settings{BaseURL: "http://search:9200/v1", Client: Config{Transport: "resty", Timeout: 3 * time.Second}},
			"http://search:9200/v1 transport=resty timeout=3s",
			9200,
		},
		{
			"plain http",
			Settings{BaseURL: "http://users"},
			"http://users transport=http",
			80,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewComponent("", tc.settings).Describe()
			if d.Name != "fetch" {
				t.Errorf("expected default name, got %q", d.Name)
			}
			if d.Type != "http-client" {
				t.Errorf("unexpected type %q", d.Type)
			}
			if d.Details != tc.details {
				t.Errorf("details = %q, want %q", d.Details, tc.details)
			}
			if d.Port != tc.port {
				t.Errorf("port = %d, want %d", d.Port, tc.port)
			}
		})
	}
}
