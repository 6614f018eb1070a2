package component

import "context"

// HealthStatus is the coarse state reported by a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health is a health report for one component.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Healthy returns a healthy report for name.
func Healthy(name string) Health {
	return Health{Name: name, Status: StatusHealthy}
}

// Unhealthy returns an unhealthy report for name carrying err's message.
func Unhealthy(name string, err error) Health {
	h := Health{Name: name, Status: StatusUnhealthy}
	if err != nil {
		h.Message = err.Error()
	}
	return h
}

// Component is anything with a Start/Stop lifecycle that a Registry can run.
type Component interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Health(ctx context.Context) Health
}

// Description summarizes a component for startup output.
type Description struct {
	// Name is the display name. Registry.Describe fills it from Name() when empty.
	Name string
	// Type categorizes the component, e.g. "http-client".
	Type string
	// Details is a one-liner such as "https://api.example.com transport=http timeout=5s".
	Details string
	// Port is the remote port, 0 if not applicable.
	Port int
}

// Describable is implemented by components that can summarize their setup.
type Describable interface {
	Describe() Description
}
