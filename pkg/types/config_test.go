package types

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: "sqlite", DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "sqlite with empty DataDir is valid at config level",
			config:  Config{Backend: "sqlite", DataDir: ""},
			wantErr: nil,
		},
		{
			name:    "fully populated config",
			config:  Config{Backend: "sqlite", LogLevel: "debug", PageSize: 24, LoadTimeout: time.Second, RoutePrefix: "/eproc"},
			wantErr: nil,
		},
		{
			name:    "unknown log level",
			config:  Config{Backend: "sqlite", LogLevel: "verbose"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative page size",
			config:  Config{Backend: "sqlite", PageSize: -1},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "route prefix must be absolute",
			config:  Config{Backend: "sqlite", RoutePrefix: "app"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative load timeout",
			config:  Config{Backend: "sqlite", LoadTimeout: -time.Second},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigEffectiveDefaults(t *testing.T) {
	var c Config
	if got := c.EffectiveLoadTimeout(); got != DefaultLoadTimeout {
		t.Fatalf("EffectiveLoadTimeout() = %v", got)
	}
	if got := c.EffectiveRoutePrefix(); got != DefaultRoutePrefix {
		t.Fatalf("EffectiveRoutePrefix() = %q", got)
	}

	c = Config{LoadTimeout: 3 * time.Second, RoutePrefix: "/x"}
	if got := c.EffectiveLoadTimeout(); got != 3*time.Second {
		t.Fatalf("EffectiveLoadTimeout() = %v", got)
	}
	if got := c.EffectiveRoutePrefix(); got != "/x" {
		t.Fatalf("EffectiveRoutePrefix() = %q", got)
	}
}
