package fetch

import (
	"maps"
	"time"

	"github.com/kbukum/gofetch/codec"
	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/transport"
	"github.com/kbukum/gofetch/validation"
)

// Config holds client-level defaults. The zero value is valid: no timeout,
// no extra headers, JSON in both directions over net/http.
type Config struct {
	// Timeout bounds each call. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`

	// Headers are sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers" validate:"omitempty,dive,keys,header_name,endkeys,header_value"`

	// Accept is the default Accept content type.
	Accept codec.ContentType `yaml:"accept" mapstructure:"accept" validate:"content_type"`

	// ContentType is the default encoding for request bodies.
	ContentType codec.ContentType `yaml:"content_type" mapstructure:"content_type" validate:"content_type"`

	// Transport selects the HTTP implementation: "http" (default) or "resty".
	Transport string `yaml:"transport" mapstructure:"transport" validate:"omitempty,oneof=http resty"`

	// TLS configures certificates for the built-in transports.
	TLS *transport.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// RequestIDHeader, when set, names a header stamped with a random UUID
	// on every request that does not already carry it.
	RequestIDHeader string `yaml:"request_id_header" mapstructure:"request_id_header" validate:"omitempty,header_name"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// clone returns a deep copy so snapshots never share mutable state.
func (c Config) clone() Config {
	out := c
	out.Headers = maps.Clone(c.Headers)
	if c.TLS != nil {
		tls := *c.TLS
		out.TLS = &tls
	}
	return out
}

func (c Config) transportConfig() transport.Config {
	return transport.Config{
		Kind:    c.Transport,
		Timeout: c.Timeout,
		TLS:     c.TLS,
	}
}

// checkConfig validates cfg and reports failures as UNKNOWN errors.
func checkConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		if errors.IsUnknown(err) {
			return err
		}
		return errors.Unknown("invalid configuration", err)
	}
	return nil
}
