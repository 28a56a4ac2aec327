package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds backend selection and the runtime parameters of the
// application.
type Config struct {
	Backend     string        `json:"backend" yaml:"backend" mapstructure:"backend"`
	DataDir     string        `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel    string        `json:"log_level" yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	PageSize    int           `json:"page_size" yaml:"page_size" mapstructure:"page_size" validate:"gte=0,lte=500"`
	LoadTimeout time.Duration `json:"load_timeout" yaml:"load_timeout" mapstructure:"load_timeout" validate:"gte=0"`
	RoutePrefix string        `json:"route_prefix" yaml:"route_prefix" mapstructure:"route_prefix" validate:"omitempty,startswith=/,excludesall=?#"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Defaults applied when a Config field is left zero.
const (
	DefaultLoadTimeout = 10 * time.Second
	DefaultRoutePrefix = "/app"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrInvalidConfig  = errors.New("invalid config")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the Config is well-formed. Backend problems return
// ErrBackendEmpty or ErrBackendUnknown; any other field violation wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s fails %q", ErrInvalidConfig, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// EffectiveLoadTimeout returns LoadTimeout or DefaultLoadTimeout when unset.
func (c Config) EffectiveLoadTimeout() time.Duration {
	if c.LoadTimeout <= 0 {
		return DefaultLoadTimeout
	}
	return c.LoadTimeout
}

// EffectiveRoutePrefix returns RoutePrefix or DefaultRoutePrefix when unset.
func (c Config) EffectiveRoutePrefix() string {
	if c.RoutePrefix == "" {
		return DefaultRoutePrefix
	}
	return c.RoutePrefix
}
