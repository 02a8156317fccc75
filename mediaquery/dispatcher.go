package mediaquery

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Filter gates a change notification; returning false halts propagation.
type Filter func(MediaChange) bool

// Handler consumes a change notification that passed all filters.
type Handler func(MediaChange)

type observer struct {
	handler Handler
	filters []Filter
}

// Dispatcher is a synchronous in-process push stream of MediaChange values.
// Activations are driven programmatically (a host adapter, a test, or the
// simulate command) and delivered to observers in subscription order.
// Stream-level filters run once per change before fan-out, which is where a
// PrintHook's Intercept predicate composes.
//
// Only the observer and query tables are guarded; delivery itself is
// synchronous and must not be invoked reentrantly from a handler.
type Dispatcher struct {
	mu         sync.Mutex
	observers  []*observer
	filters    []Filter
	registered map[string]bool
	active     map[string]bool

	log *logrus.Entry
}

// NewDispatcher creates an empty dispatcher. A nil logger discards output.
func NewDispatcher(logger *logrus.Entry) *Dispatcher {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = logrus.NewEntry(l)
	}
	return &Dispatcher{
		registered: make(map[string]bool),
		active:     make(map[string]bool),
		log:        logger,
	}
}

// RegisterQuery records queries as observed. Registration is idempotent.
func (d *Dispatcher) RegisterQuery(queries ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, q := range queries {
		if q != "" && !d.registered[q] {
			d.registered[q] = true
			d.log.WithField("query", q).Debug("Registered media query")
		}
	}
}

// AddFilter installs a stream-level filter, applied once per change before
// any observer sees it. Filters run in installation order.
func (d *Dispatcher) AddFilter(f Filter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filters = append(d.filters, f)
}

// Subscribe registers a handler with optional per-observer filters and
// returns an unsubscribe function.
func (d *Dispatcher) Subscribe(handler Handler, filters ...Filter) func() {
	obs := &observer{handler: handler, filters: filters}

	d.mu.Lock()
	d.observers = append(d.observers, obs)
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		for i, o := range d.observers {
			if o == obs {
				d.observers = append(d.observers[:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

// IsActive reports whether a query is currently matching.
func (d *Dispatcher) IsActive(query string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active[query]
}

// Activate marks a query as matching and delivers the transition. Already
// active queries deliver nothing.
func (d *Dispatcher) Activate(query string) {
	d.mu.Lock()
	if d.active[query] {
		d.mu.Unlock()
		return
	}
	d.registered[query] = true
	d.active[query] = true
	d.mu.Unlock()

	d.Send(NewMediaChange(true, query))
}

// Deactivate marks a query as not matching and delivers the transition.
// Queries that are not active deliver nothing.
func (d *Dispatcher) Deactivate(query string) {
	d.mu.Lock()
	if !d.active[query] {
		d.mu.Unlock()
		return
	}
	delete(d.active, query)
	d.mu.Unlock()

	d.Send(NewMediaChange(false, query))
}

// Send delivers a change synchronously: stream filters first, then each
// observer's filters and handler, in subscription order.
func (d *Dispatcher) Send(change MediaChange) {
	d.mu.Lock()
	filters := make([]Filter, len(d.filters))
	copy(filters, d.filters)
	observers := make([]*observer, len(d.observers))
	copy(observers, d.observers)
	d.mu.Unlock()

	for _, f := range filters {
		if !f(change) {
			d.log.WithField("query", change.MediaQuery).Debug("Change suppressed by stream filter")
			return
		}
	}

	for _, obs := range observers {
		delivered := true
		for _, f := range obs.filters {
			if !f(change) {
				delivered = false
				break
			}
		}
		if delivered {
			obs.handler(change)
		}
	}
}
