package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
}

func TestDefaultGeometry(t *testing.T) {
	g := DefaultConfig().Court.Geometry()

	if g.Court.Min.X != 80 || g.Court.Min.Y != 355 || g.Court.Max.X != 720 || g.Court.Max.Y != 360 {
		t.Errorf("Expected court (80,355)-(720,360), got %+v", g.Court)
	}
	if g.Net.Min.Y != 310 || g.Net.Max.Y != 350 {
		t.Errorf("Expected net to span y 310-350, got %+v", g.Net)
	}
	if g.Midline() != 400 {
		t.Errorf("Expected midline 400, got %v", g.Midline())
	}
	if g.Serve.X != 80 || g.Serve.Y != 345 {
		t.Errorf("Expected serve spot (80,345), got %+v", g.Serve)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"zero width", func(c *Config) { c.Court.Width = 0 }, ErrInvalidGeometry},
		{"line frac too large", func(c *Config) { c.Court.LineFrac = 0.5 }, ErrInvalidGeometry},
		{"net as thin as court", func(c *Config) { c.Court.LineFrac = 0.0125 }, ErrInvalidGeometry},
		{"net wider than court", func(c *Config) { c.Court.LineThick = 700 }, ErrInvalidGeometry},
		{"huge ball at serve", func(c *Config) { c.Physics.BallRadius = 20 }, ErrInvalidGeometry},
		{"zero speed", func(c *Config) { c.Physics.BallSpeed = 0 }, ErrInvalidPhysics},
		{"negative drag", func(c *Config) { c.Physics.AirResistance = -1 }, ErrInvalidPhysics},
		{"drag step too big", func(c *Config) { c.Physics.AirResistance = 100; c.Physics.MaxStep = 0.02 }, ErrInvalidPhysics},
		{"step above delta", func(c *Config) { c.Physics.MaxStep = 1 }, ErrInvalidPhysics},
		{"step jumps the net", func(c *Config) { c.Physics.MaxStep = 0.1 }, ErrInvalidPhysics},
		{"speed jumps the net", func(c *Config) { c.Physics.BallSpeed = 900 }, ErrInvalidPhysics},
		{"empty aim range", func(c *Config) { c.Input.Min = 55 }, ErrInvalidInput},
		{"zero rate", func(c *Config) { c.Input.Rate = 0 }, ErrInvalidInput},
		{"left start outside", func(c *Config) { c.Input.LeftStart = 90 }, ErrInvalidInput},
		{"right start outside", func(c *Config) { c.Input.RightStart = 0 }, ErrInvalidInput},
		{"missing strike key", func(c *Config) { c.Controls.Right.Strike = "" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Physics.BallSpeed != DefaultConfig().Physics.BallSpeed {
		t.Errorf("Expected default ball speed, got %v", cfg.Physics.BallSpeed)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tennis.json")
	data := `{"physics": {"gravity": 100}, "controls": {"left": {"strike": "Space"}}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Physics.Gravity != 100 {
		t.Errorf("Expected gravity 100, got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.BallSpeed != 480 {
		t.Errorf("Expected ball speed to keep default 480, got %v", cfg.Physics.BallSpeed)
	}
	if cfg.Controls.Left.Strike != "Space" || cfg.Controls.Left.Raise != "W" {
		t.Errorf("Expected left controls W/S/Space, got %+v", cfg.Controls.Left)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"court": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("Expected parse error for truncated JSON")
	}

	degenerate := filepath.Join(dir, "degenerate.json")
	if err := os.WriteFile(degenerate, []byte(`{"court": {"line_thick": 0}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(degenerate); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry, got %v", err)
	}
}
