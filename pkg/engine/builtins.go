package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/stompcase/pkg/enclosure"
	zygo "github.com/glycerine/zygomys/zygo"
	"gonum.org/v1/gonum/spatial/r2"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms configuration script source before passing it
// to zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: side-switch -> side_switch
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus
		// operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpVec2 wraps an r2.Vec so board offsets can be passed between builtins.
type sexpVec2 struct {
	vec r2.Vec
}

func (v *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %.1f %.1f)", v.vec.X, v.vec.Y)
}
func (v *sexpVec2) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an integer from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toVec2 extracts an r2.Vec from a sexpVec2.
func toVec2(s zygo.Sexp) (r2.Vec, error) {
	if v, ok := s.(*sexpVec2); ok {
		return v.vec, nil
	}
	return r2.Vec{}, fmt.Errorf("expected vec2, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the configuration DSL builtins into a zygomys
// environment. The builtins mutate cfg, which starts as the default
// configuration; every keyword overrides one parameter.
//
// Source code must be preprocessed with preprocessSource() before evaluation
// so that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, cfg *enclosure.Config) {

	// -----------------------------------------------------------------------
	// (vec2 -50 20)
	// -----------------------------------------------------------------------
	env.AddFunction("vec2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
		}
		return &sexpVec2{vec: r2.Vec{X: x, Y: y}}, nil
	})

	// -----------------------------------------------------------------------
	// (enclosure :switches-per-row 4 :switch-spacing 45 :edge-margin 25
	//            :pi-board-offset (vec2 -50 20) ...)
	// -----------------------------------------------------------------------
	env.AddFunction("enclosure", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("enclosure: unexpected positional argument %s",
				pa.positional[0].SexpString(nil))
		}

		floats := map[string]*float64{
			"switch-spacing":          &cfg.SwitchSpacing,
			"edge-margin":             &cfg.EdgeMargin,
			"low-height":              &cfg.LowHeight,
			"high-height":             &cfg.HighHeight,
			"depth":                   &cfg.Depth,
			"shell-thickness":         &cfg.ShellThickness,
			"lid-thickness":           &cfg.LidThickness,
			"corner-radius":           &cfg.CornerRadius,
			"lip-depth":               &cfg.LipDepth,
			"lip-width":               &cfg.LipWidth,
			"switch-hole-dia":         &cfg.SwitchHoleDiameter,
			"dc-jack-dia":             &cfg.DCJackDiameter,
			"usb-slot-width":          &cfg.USBSlotWidth,
			"usb-slot-height":         &cfg.USBSlotHeight,
			"screw-hole-dia":          &cfg.ScrewHoleDiameter,
			"countersink-dia":         &cfg.CountersinkDiameter,
			"board-screw-dia":         &cfg.BoardScrewDiameter,
			"boss-dia":                &cfg.BossDiameter,
			"row-offset-a":            &cfg.RowOffsetA,
			"row-offset-b":            &cfg.RowOffsetB,
			"display-width":           &cfg.DisplayWidth,
			"display-height":          &cfg.DisplayHeight,
			"display-mount-width":     &cfg.DisplayMountWidth,
			"display-mount-height":    &cfg.DisplayMountHeight,
			"display-offset-y":        &cfg.DisplayOffsetY,
			"display-standoff-height": &cfg.DisplayStandoffHeight,
			"display-standoff-dia":    &cfg.DisplayStandoffDia,
			"side-switch-spacing":     &cfg.SideSwitchSpacing,
			"side-switch-offset-y":    &cfg.SideSwitchOffsetY,
			"board-standoff-height":   &cfg.BoardStandoffHeight,
		}
		vecs := map[string]*r2.Vec{
			"pi-board-offset": &cfg.PiBoardOffset,
			"board-a-offset":  &cfg.BoardAOffset,
			"board-b-offset":  &cfg.BoardBOffset,
		}

		for key, value := range pa.kw {
			switch {
			case key == "switches-per-row":
				n, err := toInt(value)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("enclosure: %s: %w", key, err)
				}
				cfg.SwitchesPerRow = n
			case floats[key] != nil:
				f, err := toFloat64(value)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("enclosure: %s: %w", key, err)
				}
				*floats[key] = f
			case vecs[key] != nil:
				v, err := toVec2(value)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("enclosure: %s: %w", key, err)
				}
				*vecs[key] = v
			default:
				return zygo.SexpNull, fmt.Errorf("enclosure: unknown parameter :%s", key)
			}
		}

		return zygo.SexpNull, nil
	})
}
