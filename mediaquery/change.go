package mediaquery

// MediaChange is one observed media condition transition. MediaQuery and
// Matches describe the transition itself; the remaining fields are auxiliary
// metadata that travels with the event and must survive any rewriting of the
// query/alias fields.
type MediaChange struct {
	Matches    bool
	MediaQuery string
	MQAlias    string
	Suffix     string
	Priority   int
	Property   string
	Value      string
}

// NewMediaChange builds a change notification for a query transition.
func NewMediaChange(matches bool, mediaQuery string) MediaChange {
	if mediaQuery == "" {
		mediaQuery = "all"
	}
	return MediaChange{Matches: matches, MediaQuery: mediaQuery}
}

// Clone returns a value copy of the change.
func (c MediaChange) Clone() MediaChange {
	return c
}

// MergeAlias copies a breakpoint's alias metadata onto a change and returns
// the merged value. A nil breakpoint leaves the change untouched.
func MergeAlias(dest MediaChange, bp *Breakpoint) MediaChange {
	out := dest.Clone()
	if bp == nil {
		return out
	}
	out.MQAlias = bp.Alias
	out.Suffix = bp.Suffix
	if out.Suffix == "" {
		out.Suffix = SuffixFor(bp.Alias)
	}
	out.Priority = bp.Priority
	return out
}
