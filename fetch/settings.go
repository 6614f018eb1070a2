package fetch

import (
	"github.com/kbukum/gofetch/config"
	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/logger"
	"github.com/kbukum/gofetch/validation"
)

// Settings is the file representation of a client. Timeouts are duration
// strings ("5s") or bare numbers of milliseconds (5000):
//
//	base_url: https://api.example.com/v1
//	client:
//	  timeout: 5s
//	  accept: application/xml
//	  transport: resty
//	  headers:
//	    X-Api-Key: secret
//	logger:
//	  level: debug
type Settings struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url" validate:"required"`
	Client  Config        `yaml:"client" mapstructure:"client"`
	Logger  logger.Config `yaml:"logger" mapstructure:"logger"`
}

// Validate checks the settings.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	lc := s.Logger
	lc.ApplyDefaults()
	if err := lc.Validate(); err != nil {
		return errors.Unknown("invalid logger configuration", err)
	}
	return nil
}

// LoadSettings reads settings from a YAML, JSON or TOML file.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	if err := config.Load(path, &s); err != nil {
		return nil, errors.Unknown("failed to load settings", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewFromSettings creates a client from s. The logger described by s is used
// unless opts supply one.
func NewFromSettings(s *Settings, opts ...Option) (*Client, error) {
	if s == nil {
		return nil, errors.Unknown("settings are required", nil)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	lc := s.Logger
	lc.ApplyDefaults()

	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithLogger(logger.New(&lc, "gofetch")))
	all = append(all, opts...)
	return New(s.BaseURL, &s.Client, all...)
}
