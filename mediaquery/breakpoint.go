package mediaquery

import (
	"sort"
	"strings"
)

// PrintQuery is the media condition literal denoting the print rendering
// context. Any media query beginning with this literal is print-scoped.
const PrintQuery = "print"

// PrintPriority ranks the synthetic print breakpoint above every default
// breakpoint while printing is active.
const PrintPriority = 1000

// Breakpoint is an immutable named media query descriptor. Identity is the
// MediaQuery string; Alias and Suffix are presentation metadata. Higher
// Priority wins when several queries match at once.
type Breakpoint struct {
	Alias       string
	MediaQuery  string
	Suffix      string
	Priority    int
	Overlapping bool
}

// PrintBreakpoint returns the synthetic breakpoint injected while a print
// context is matching.
func PrintBreakpoint() *Breakpoint {
	return &Breakpoint{
		Alias:      PrintQuery,
		MediaQuery: PrintQuery,
		Suffix:     "Print",
		Priority:   PrintPriority,
	}
}

// SuffixFor derives the camel-cased directive suffix for an alias,
// e.g. "gt-sm" becomes "GtSm".
func SuffixFor(alias string) string {
	parts := strings.FieldsFunc(alias, func(r rune) bool {
		return r == '-' || r == '.' || r == '_'
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// DefaultBreakpoints is the standard responsive breakpoint set. The lt-* and
// gt-* entries overlap the base ranges and are marked as such.
var DefaultBreakpoints = []*Breakpoint{
	{Alias: "xs", MediaQuery: "screen and (min-width: 0px) and (max-width: 599.98px)", Priority: 1000},
	{Alias: "sm", MediaQuery: "screen and (min-width: 600px) and (max-width: 959.98px)", Priority: 900},
	{Alias: "md", MediaQuery: "screen and (min-width: 960px) and (max-width: 1279.98px)", Priority: 800},
	{Alias: "lg", MediaQuery: "screen and (min-width: 1280px) and (max-width: 1919.98px)", Priority: 700},
	{Alias: "xl", MediaQuery: "screen and (min-width: 1920px) and (max-width: 4999.98px)", Priority: 600},

	{Alias: "lt-sm", MediaQuery: "screen and (max-width: 599.98px)", Priority: 950, Overlapping: true},
	{Alias: "lt-md", MediaQuery: "screen and (max-width: 959.98px)", Priority: 850, Overlapping: true},
	{Alias: "lt-lg", MediaQuery: "screen and (max-width: 1279.98px)", Priority: 750, Overlapping: true},
	{Alias: "lt-xl", MediaQuery: "screen and (max-width: 1919.98px)", Priority: 650, Overlapping: true},

	{Alias: "gt-xs", MediaQuery: "screen and (min-width: 600px)", Priority: -950, Overlapping: true},
	{Alias: "gt-sm", MediaQuery: "screen and (min-width: 960px)", Priority: -850, Overlapping: true},
	{Alias: "gt-md", MediaQuery: "screen and (min-width: 1280px)", Priority: -750, Overlapping: true},
	{Alias: "gt-lg", MediaQuery: "screen and (min-width: 1920px)", Priority: -650, Overlapping: true},
}

// SortDescendingPriority stable-sorts breakpoints by descending priority, in
// place, and returns the slice. Entries with equal priority keep their
// relative input order, since alias resolution order reflects configuration
// intent.
func SortDescendingPriority(bps []*Breakpoint) []*Breakpoint {
	sort.SliceStable(bps, func(i, j int) bool {
		return bps[i].Priority > bps[j].Priority
	})
	return bps
}

// SortAscendingPriority stable-sorts breakpoints by ascending priority, in
// place, and returns the slice.
func SortAscendingPriority(bps []*Breakpoint) []*Breakpoint {
	sort.SliceStable(bps, func(i, j int) bool {
		return bps[i].Priority < bps[j].Priority
	})
	return bps
}
