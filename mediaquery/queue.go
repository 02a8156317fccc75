package mediaquery

import "strings"

// PrintQueue is the ordered set of breakpoints forced active while a print
// context matches. Entries are unique by media query and kept in descending
// priority order, with print-scoped entries ranked first. The queue is owned
// by a single PrintHook and only populated between print start and stop.
type PrintQueue struct {
	printBreakpoints []*Breakpoint
}

// AddAll appends the synthetic print breakpoint to the candidates, sorts the
// result by descending priority, inserts each entry, and returns a snapshot
// of the queue contents.
func (q *PrintQueue) AddAll(candidates []*Breakpoint) []*Breakpoint {
	merged := make([]*Breakpoint, 0, len(candidates)+1)
	merged = append(merged, candidates...)
	merged = append(merged, PrintBreakpoint())

	for _, bp := range SortDescendingPriority(merged) {
		q.Add(bp)
	}
	return q.Snapshot()
}

// Add inserts a breakpoint unless it is nil or already queued. A breakpoint
// whose own media query denotes print-context is prepended so it outranks
// the forced non-print aliases; everything else is appended.
func (q *PrintQueue) Add(bp *Breakpoint) {
	if bp == nil || q.contains(bp.MediaQuery) {
		return
	}

	if strings.HasPrefix(bp.MediaQuery, PrintQuery) {
		q.printBreakpoints = append([]*Breakpoint{bp}, q.printBreakpoints...)
	} else {
		q.printBreakpoints = append(q.printBreakpoints, bp)
	}
}

// Clear empties the queue.
func (q *PrintQueue) Clear() {
	q.printBreakpoints = nil
}

// IsEmpty reports whether no print breakpoints are queued.
func (q *PrintQueue) IsEmpty() bool {
	return len(q.printBreakpoints) == 0
}

// Snapshot returns a defensive copy of the queued breakpoints in order.
func (q *PrintQueue) Snapshot() []*Breakpoint {
	out := make([]*Breakpoint, len(q.printBreakpoints))
	copy(out, q.printBreakpoints)
	return out
}

func (q *PrintQueue) contains(mediaQuery string) bool {
	for _, queued := range q.printBreakpoints {
		if queued.MediaQuery == mediaQuery {
			return true
		}
	}
	return false
}
