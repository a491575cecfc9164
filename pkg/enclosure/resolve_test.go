package enclosure

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestResolveDerivedGeometry(t *testing.T) {
	cfg := DefaultConfig()
	r, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got, want := r.Width, 185.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Width = %g, want %g", got, want)
	}
	if got, want := r.SlantAngle*180/math.Pi, 11.60; math.Abs(got-want) > 0.01 {
		t.Errorf("SlantAngle = %g deg, want %g", got, want)
	}
	if got, want := r.LidLength, 199.06; math.Abs(got-want) > 0.01 {
		t.Errorf("LidLength = %g, want %g", got, want)
	}
}

func TestResolveRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		param  string
	}{
		{"no switches", func(c *Config) { c.SwitchesPerRow = 0 }, "SwitchesPerRow"},
		{"zero depth", func(c *Config) { c.Depth = 0 }, "Depth"},
		{"negative spacing", func(c *Config) { c.SwitchSpacing = -1 }, "SwitchSpacing"},
		{"high below low", func(c *Config) { c.HighHeight = 20 }, "HighHeight"},
		{"huge corner radius", func(c *Config) { c.CornerRadius = 200 }, "CornerRadius"},
		{"wide lip", func(c *Config) { c.LipWidth = 3 }, "LipWidth"},
		{"deep lip", func(c *Config) { c.LipDepth = 40 }, "LipDepth"},
		{"screw swallows boss", func(c *Config) { c.ScrewHoleDiameter = 10 }, "ScrewHoleDiameter"},
		{"countersink under screw", func(c *Config) { c.CountersinkDiameter = 3 }, "CountersinkDiameter"},
		{"wall collapse", func(c *Config) {
			c.SwitchesPerRow = 1
			c.EdgeMargin = 1
		}, "ShellThickness"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := Resolve(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error %v is not a ConfigurationError", err)
			}
			if !strings.Contains(err.Error(), tt.param) {
				t.Errorf("error %q does not name %s", err, tt.param)
			}
		})
	}
}

func TestResolveCollectsAllViolations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Depth = -5
	cfg.LidThickness = 0
	_, err := Resolve(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, param := range []string{"Depth", "LidThickness"} {
		if !strings.Contains(err.Error(), param) {
			t.Errorf("joined error %q does not name %s", err, param)
		}
	}
}

func TestMountPointProjection(t *testing.T) {
	r, err := Resolve(DefaultConfig())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	body := r.MountPoints()
	lid := r.LidMounts()
	if len(body) != len(lid) {
		t.Fatalf("mount count mismatch: body %d, lid %d", len(body), len(lid))
	}
	// 4 corners + (N-1) inter-column pillars.
	if want := 4 + r.SwitchesPerRow - 1; len(body) != want {
		t.Fatalf("mount count = %d, want %d", len(body), want)
	}
	for i := range body {
		if body[i].Pos.X != lid[i].Pos.X {
			t.Errorf("mount %d: x drifted, body %g lid %g", i, body[i].Pos.X, lid[i].Pos.X)
		}
		want := body[i].Pos.Y / r.CosSlant
		if math.Abs(lid[i].Pos.Y-want) > 1e-9 {
			t.Errorf("mount %d: lid y = %g, want bodyY/cos = %g", i, lid[i].Pos.Y, want)
		}
	}

	// Scenario: corner offset max(5, 8) = 8 projects to about 8.17.
	if got := body[0].Pos.Y; math.Abs(got-8) > 1e-9 {
		t.Errorf("corner boss offset = %g, want 8", got)
	}
	if got := lid[0].Pos.Y; math.Abs(got-8.17) > 0.01 {
		t.Errorf("projected corner offset = %g, want 8.17", got)
	}
}

func TestSingleColumnHasNoPillars(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SwitchesPerRow = 1
	cfg.EdgeMargin = 41
	r, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got, want := r.Width, 82.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Width = %g, want %g", got, want)
	}
	if got := len(r.MountPoints()); got != 4 {
		t.Errorf("mount count = %d, want 4 corner bosses only", got)
	}
}

func TestSeatZFollowsTaper(t *testing.T) {
	r, err := Resolve(DefaultConfig())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got := r.SeatZ(0); math.Abs(got-r.LowHeight) > 1e-9 {
		t.Errorf("SeatZ(0) = %g, want %g", got, r.LowHeight)
	}
	if got := r.SeatZ(r.Depth); math.Abs(got-r.HighHeight) > 1e-9 {
		t.Errorf("SeatZ(depth) = %g, want %g", got, r.HighHeight)
	}
}
