package config

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Database.Path == "" {
		t.Error("Path should not be empty")
	}
	if !cfg.Database.AutoMigrate {
		t.Error("AutoMigrate should default to true")
	}
	if cfg.Output.ChartsDir == "" {
		t.Error("ChartsDir should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid sqlite",
			cfg:  Config{Database: DatabaseConfig{Driver: "sqlite", Path: "/tmp/flights.db"}},
		},
		{
			name: "valid postgres",
			cfg:  Config{Database: DatabaseConfig{Driver: "postgres", DSN: "postgres://localhost/flights"}},
		},
		{
			name:    "sqlite without path",
			cfg:     Config{Database: DatabaseConfig{Driver: "sqlite"}},
			wantErr: "database path",
		},
		{
			name:    "postgres without dsn",
			cfg:     Config{Database: DatabaseConfig{Driver: "postgres"}},
			wantErr: "dsn",
		},
		{
			name:    "unknown driver",
			cfg:     Config{Database: DatabaseConfig{Driver: "oracle", Path: "x"}},
			wantErr: "unsupported database driver",
		},
		{
			name:    "empty driver",
			cfg:     Config{Database: DatabaseConfig{Path: "/tmp/flights.db"}},
			wantErr: "unsupported database driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Config{
		Database: DatabaseConfig{
			Driver:      "postgres",
			DSN:         "postgres://flight:secret@db:5432/flight_performance",
			AutoMigrate: false,
		},
		Output: OutputConfig{ChartsDir: "/var/lib/flightdash/charts"},
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Config
	if err := toml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
