package mediaquery

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// HookTarget is the consumer-owned object driven by a PrintHook. The hook
// only ever replaces the activated breakpoint list wholesale and fires the
// re-render trigger; it never reads the trigger's effect.
type HookTarget interface {
	SetActivatedBreakpoints(bps []*Breakpoint)
	UpdateStyles()
}

// PrintHook decides which breakpoints are active when media conditions
// change, and guarantees that printing activates a deterministic,
// priority-ordered breakpoint set which is restored exactly when printing
// ends.
//
// The host never signals "about to print" directly; only query transitions
// arrive, interleaved with ordinary activations and deactivations. The hook
// therefore reconstructs "what was active right before print" from a rolling
// cache of deactivation events. All state transitions happen synchronously
// inside the predicate returned by Intercept; the hook assumes the host
// delivers notifications one at a time, in order.
type PrintHook struct {
	registry     *Registry
	printAliases []string

	queue         PrintQueue
	deactivations []*Breakpoint

	log *logrus.Entry
}

// NewPrintHook creates a hook over the given registry. printAliases lists
// the breakpoint aliases forced active while printing (typically
// media.print_with_breakpoints from flexlayout.yml); nil degrades to none.
// A nil logger discards all output.
func NewPrintHook(registry *Registry, printAliases []string, logger *logrus.Entry) *PrintHook {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	return &PrintHook{
		registry:     registry,
		printAliases: printAliases,
		log:          logger,
	}
}

// WithPrintQuery appends the print condition literal to a query list, so a
// subscription set up from registry queries also observes print transitions.
// Callers are expected to apply this once per subscription setup; repeated
// application duplicates the literal.
func (h *PrintHook) WithPrintQuery(queries []string) []string {
	return append(queries, PrintQuery)
}

// IsPrintEvent reports whether a change notification is print-scoped.
func (h *PrintHook) IsPrintEvent(e MediaChange) bool {
	return strings.HasPrefix(e.MediaQuery, PrintQuery)
}

// IsPrinting reports whether a print context is currently active.
func (h *PrintHook) IsPrinting() bool {
	return !h.queue.IsEmpty()
}

// PrintAliases returns the configured list of aliases forced during
// printing; empty when unconfigured.
func (h *PrintHook) PrintAliases() []string {
	if h.printAliases == nil {
		return []string{}
	}
	return h.printAliases
}

// PrintBreakpoints resolves the configured print aliases against the
// registry. Aliases that fail to resolve are silently dropped.
func (h *PrintHook) PrintBreakpoints() []*Breakpoint {
	var bps []*Breakpoint
	for _, alias := range h.PrintAliases() {
		if bp := h.registry.FindByAlias(alias); bp != nil {
			bps = append(bps, bp)
		}
	}
	return bps
}

// EventBreakpoints returns the candidate set about to become active for a
// print transition: the configured print breakpoints plus the breakpoint
// resolved from the event's query (when it resolves), in stable descending
// priority order.
func (h *PrintHook) EventBreakpoints(e MediaChange) []*Breakpoint {
	bps := h.PrintBreakpoints()
	if bp := h.registry.FindByQuery(e.MediaQuery); bp != nil {
		bps = append(bps, bp)
	}
	return SortDescendingPriority(bps)
}

// UpdateEvent resolves a change notification into the concrete breakpoint
// that should represent it. Print events are rewritten to the
// highest-priority candidate's query (or the empty string when nothing
// resolves); ordinary events keep their query. Alias metadata from the
// resolved breakpoint is merged in either way; unrelated metadata fields
// pass through untouched.
func (h *PrintHook) UpdateEvent(e MediaChange) MediaChange {
	bp := h.registry.FindByQuery(e.MediaQuery)
	if h.IsPrintEvent(e) {
		// Reset mediaQuery to the activated or deactivated breakpoint
		candidates := h.EventBreakpoints(e)
		if len(candidates) > 0 {
			bp = candidates[0]
			e.MediaQuery = bp.MediaQuery
		} else {
			bp = nil
			e.MediaQuery = ""
		}
	}
	return MergeAlias(e, bp)
}

// Intercept returns the gating predicate for a subscription's filter stage.
// For each delivered notification it updates the hook's state and the
// target, then decides propagation: print-scoped events are always
// suppressed, and every event is suppressed while print mode is active, so
// downstream consumers never observe raw print transitions nor any
// intermediate event during printing.
func (h *PrintHook) Intercept(target HookTarget) func(MediaChange) bool {
	return func(e MediaChange) bool {
		if h.IsPrintEvent(e) {
			if e.Matches {
				h.StartPrinting(target, h.EventBreakpoints(e))
				target.UpdateStyles()
			} else {
				h.StopPrinting(target)
				target.UpdateStyles()
			}
		} else {
			h.CollectActivations(e)
		}
		return !(h.IsPrinting() || h.IsPrintEvent(e))
	}
}

// StartPrinting queues the candidate breakpoints (plus the synthetic print
// breakpoint) and replaces the target's activated list with the resulting
// priority-ordered set.
func (h *PrintHook) StartPrinting(target HookTarget, candidates []*Breakpoint) {
	activated := h.queue.AddAll(candidates)
	h.log.WithField("breakpoints", len(activated)).Debug("Print context activated")
	target.SetActivatedBreakpoints(activated)
}

// StopPrinting clears the print queue and restores the target's activated
// list from the deactivation cache. Calling it while not printing is a
// no-op.
func (h *PrintHook) StopPrinting(target HookTarget) {
	if !h.IsPrinting() {
		return
	}
	h.queue.Clear()
	h.log.WithField("restored", len(h.deactivations)).Debug("Print context deactivated")
	target.SetActivatedBreakpoints(h.Deactivations())
}

// CollectActivations maintains the restore cache from ordinary (non-print)
// events. A deactivation whose query resolves is recorded once per query and
// the cache re-sorted by descending priority; an activation clears the cache
// entirely, since the recorded deactivation history no longer reflects the
// state immediately before that activation. While a print context is active
// the cache holds the pre-print snapshot and activations must not disturb
// it, so the invalidation is suspended until printing ends.
func (h *PrintHook) CollectActivations(e MediaChange) {
	if e.Matches {
		if !h.IsPrinting() {
			h.deactivations = nil
		}
		return
	}

	bp := h.registry.FindByQuery(e.MediaQuery)
	if bp == nil {
		return
	}
	for _, cached := range h.deactivations {
		if cached.MediaQuery == bp.MediaQuery {
			return
		}
	}
	h.deactivations = SortDescendingPriority(append(h.deactivations, bp))
}

// Deactivations returns a snapshot of the restore cache in priority order.
func (h *PrintHook) Deactivations() []*Breakpoint {
	out := make([]*Breakpoint, len(h.deactivations))
	copy(out, h.deactivations)
	return out
}
