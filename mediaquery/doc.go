// Package mediaquery decides which named breakpoints are active as media
// conditions change, with special handling for the print rendering context:
// entering print forces a deterministic, priority-ordered breakpoint set,
// and leaving print restores exactly what was active beforehand.
//
// The package is push-driven and synchronous. A PrintHook's Intercept
// predicate composes into the filter stage of any change stream (the
// in-process Dispatcher here, or a host adapter); all hook state mutates
// inside that predicate, one event at a time.
package mediaquery
