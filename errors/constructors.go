package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *LayoutError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *LayoutError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// BreakpointNotFound creates a breakpoint lookup failure error
func BreakpointNotFound(alias string) *LayoutError {
	return New(ErrCodeBreakpointNotFound, fmt.Sprintf("breakpoint '%s' not found", alias)).
		WithDetail("alias", alias)
}

// InvalidQuery creates an invalid media query error
func InvalidQuery(query string, reason string) *LayoutError {
	return New(ErrCodeInvalidQuery, fmt.Sprintf("invalid media query '%s': %s", query, reason)).
		WithDetail("query", query)
}

// DuplicateAlias creates a duplicate breakpoint alias error
func DuplicateAlias(alias string) *LayoutError {
	return New(ErrCodeDuplicateAlias, fmt.Sprintf("breakpoint alias '%s' is declared more than once", alias)).
		WithDetail("alias", alias)
}

// ScenarioNotFound creates a scenario file not found error
func ScenarioNotFound(path string) *LayoutError {
	return New(ErrCodeScenarioNotFound, fmt.Sprintf("scenario file not found: %s", path)).
		WithDetail("path", path)
}

// ScenarioInvalid creates a scenario parse failure error
func ScenarioInvalid(path string, err error) *LayoutError {
	return Wrap(err, ErrCodeScenarioInvalid, fmt.Sprintf("failed to parse scenario: %s", path)).
		WithDetail("path", path)
}
