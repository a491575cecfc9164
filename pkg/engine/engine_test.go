package engine

import (
	"strings"
	"testing"
)

func TestEvaluateEmptySourceKeepsDefaults(t *testing.T) {
	e := NewEngine()
	cfg, evalErrs, err := e.Evaluate("")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(evalErrs) != 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cfg.SwitchesPerRow != 4 || cfg.SwitchSpacing != 45 {
		t.Errorf("defaults not preserved: %d switches at %g spacing", cfg.SwitchesPerRow, cfg.SwitchSpacing)
	}
}

func TestEvaluateOverridesParameters(t *testing.T) {
	src := `
; wider three-switch build
(enclosure :switches-per-row 3
           :switch-spacing 50
           :edge-margin 30
           :high-height 80
           :pi-board-offset (vec2 -40 15))
`
	cfg, evalErrs, err := NewEngine().Evaluate(src)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(evalErrs) != 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cfg.SwitchesPerRow != 3 {
		t.Errorf("SwitchesPerRow = %d, want 3", cfg.SwitchesPerRow)
	}
	if cfg.SwitchSpacing != 50 || cfg.EdgeMargin != 30 || cfg.HighHeight != 80 {
		t.Errorf("overrides not applied: spacing %g margin %g high %g",
			cfg.SwitchSpacing, cfg.EdgeMargin, cfg.HighHeight)
	}
	if cfg.PiBoardOffset.X != -40 || cfg.PiBoardOffset.Y != 15 {
		t.Errorf("PiBoardOffset = %v, want (-40, 15)", cfg.PiBoardOffset)
	}
	// Untouched parameters keep their defaults.
	if cfg.Depth != 195 {
		t.Errorf("Depth = %g, want default 195", cfg.Depth)
	}
}

func TestEvaluateRejectsUnknownParameter(t *testing.T) {
	cfg, evalErrs, err := NewEngine().Evaluate(`(enclosure :wing-span 5)`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if cfg != nil {
		t.Error("expected nil config on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors")
	}
	if !strings.Contains(evalErrs[0].Message, "wing-span") {
		t.Errorf("error %q does not name the parameter", evalErrs[0].Message)
	}
}

func TestEvaluateReportsParseErrors(t *testing.T) {
	cfg, evalErrs, err := NewEngine().Evaluate(`(enclosure :depth`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if cfg != nil {
		t.Error("expected nil config on parse error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors")
	}
}

func TestEvaluateRejectsNonNumericValue(t *testing.T) {
	_, evalErrs, err := NewEngine().Evaluate(`(enclosure :depth "deep")`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors")
	}
}

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keyword", `(enclosure :depth 195)`, `(enclosure "__kw_depth" 195)`},
		{"kebab keyword", `:switch-spacing`, `"__kw_switch-spacing"`},
		{"kebab identifier", `(side-switch)`, `(side_switch)`},
		{"minus stays", `(- 10 3)`, `(- 10 3)`},
		{"comment", "; note\n(x)", "// note\n(x)"},
		{"string untouched", `"a-b :c"`, `"a-b :c"`},
		{"assignment", `(x := 5)`, `(x := 5)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseArgsSplitsKeywords(t *testing.T) {
	// Exercised indirectly through Evaluate; here check the kw/positional
	// split on a crafted mix.
	src := `(enclosure :depth 200 :low-height 30)`
	cfg, evalErrs, err := NewEngine().Evaluate(src)
	if err != nil || len(evalErrs) != 0 {
		t.Fatalf("Evaluate failed: %v %v", err, evalErrs)
	}
	if cfg.Depth != 200 || cfg.LowHeight != 30 {
		t.Errorf("got depth %g low %g, want 200 and 30", cfg.Depth, cfg.LowHeight)
	}
}
