package enclosure

import "fmt"

// ConfigurationError reports a raw parameter that violates an invariant.
// It is raised before any geometry is built.
type ConfigurationError struct {
	Param      string  // offending parameter name
	Value      float64 // its value
	Constraint string  // the violated constraint
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s = %g violates %s", e.Param, e.Value, e.Constraint)
}

// GeometryError reports a composition step that would produce a degenerate,
// self-intersecting or empty solid. No partial solid is returned alongside it.
type GeometryError struct {
	Stage  string // builder stage that failed
	Detail string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Stage, e.Detail)
}

func configErr(param string, value float64, constraint string) error {
	return &ConfigurationError{Param: param, Value: value, Constraint: constraint}
}

func geomErr(stage, format string, args ...interface{}) error {
	return &GeometryError{Stage: stage, Detail: fmt.Sprintf(format, args...)}
}
