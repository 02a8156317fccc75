package mediaquery

import (
	"strings"

	"github.com/lvzhenbang/flex-layout/config"
)

// Registry is the lookup service mapping aliases and media queries to
// breakpoint descriptors. It is immutable after construction.
type Registry struct {
	items []*Breakpoint
}

// NewRegistry builds a registry from the given breakpoints. Later entries
// with an alias already seen replace the earlier entry (custom breakpoints
// override defaults). Suffixes are derived for entries that lack one, and
// the items are kept in stable ascending priority order.
func NewRegistry(bps []*Breakpoint) *Registry {
	byAlias := make(map[string]int, len(bps))
	var items []*Breakpoint
	for _, bp := range bps {
		if bp == nil {
			continue
		}
		copied := *bp
		if copied.Suffix == "" {
			copied.Suffix = SuffixFor(copied.Alias)
		}
		if idx, ok := byAlias[copied.Alias]; ok && copied.Alias != "" {
			items[idx] = &copied
			continue
		}
		byAlias[copied.Alias] = len(items)
		items = append(items, &copied)
	}
	return &Registry{items: SortAscendingPriority(items)}
}

// NewDefaultRegistry builds a registry holding only the default breakpoints.
func NewDefaultRegistry() *Registry {
	return NewRegistry(DefaultBreakpoints)
}

// FromConfig builds a registry by merging the default breakpoint set with the
// config-declared custom breakpoints. Custom entries override a default with
// the same alias; unknown aliases are added. With DisableDefaults set, only
// the declared breakpoints are registered.
func FromConfig(media config.MediaConfig) *Registry {
	var bps []*Breakpoint
	if !media.DisableDefaults {
		bps = append(bps, DefaultBreakpoints...)
	}
	for _, declared := range media.Breakpoints {
		bps = append(bps, &Breakpoint{
			Alias:       declared.Alias,
			MediaQuery:  declared.MediaQuery,
			Priority:    declared.Priority,
			Overlapping: declared.Overlapping,
		})
	}
	return NewRegistry(bps)
}

// Items returns a copy of the registered breakpoints in ascending priority order.
func (r *Registry) Items() []*Breakpoint {
	out := make([]*Breakpoint, len(r.items))
	copy(out, r.items)
	return out
}

// SortedItems returns a copy of the registered breakpoints in descending
// priority order.
func (r *Registry) SortedItems() []*Breakpoint {
	return SortDescendingPriority(r.Items())
}

// FindByAlias resolves a breakpoint by its alias, falling back to a
// case-insensitive suffix match. Returns nil when nothing matches.
func (r *Registry) FindByAlias(alias string) *Breakpoint {
	if alias == "" {
		return nil
	}
	for _, bp := range r.items {
		if bp.Alias == alias {
			return bp
		}
	}
	for _, bp := range r.items {
		if strings.EqualFold(bp.Suffix, alias) {
			return bp
		}
	}
	return nil
}

// FindByQuery resolves a breakpoint by its media query. Returns nil when
// nothing matches.
func (r *Registry) FindByQuery(query string) *Breakpoint {
	for _, bp := range r.items {
		if bp.MediaQuery == query {
			return bp
		}
	}
	return nil
}

// Overlappings returns the breakpoints marked as overlapping ranges.
func (r *Registry) Overlappings() []*Breakpoint {
	var out []*Breakpoint
	for _, bp := range r.items {
		if bp.Overlapping {
			out = append(out, bp)
		}
	}
	return out
}

// Aliases returns the registered alias names in registry order.
func (r *Registry) Aliases() []string {
	out := make([]string, len(r.items))
	for i, bp := range r.items {
		out[i] = bp.Alias
	}
	return out
}

// Queries returns the registered media queries in registry order.
func (r *Registry) Queries() []string {
	out := make([]string, len(r.items))
	for i, bp := range r.items {
		out[i] = bp.MediaQuery
	}
	return out
}
