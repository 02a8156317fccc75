package mediaquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher(nil)

	var order []string
	d.Subscribe(func(c MediaChange) { order = append(order, "first:"+c.MediaQuery) })
	d.Subscribe(func(c MediaChange) { order = append(order, "second:"+c.MediaQuery) })

	d.Activate("Q_A")

	assert.Equal(t, []string{"first:Q_A", "second:Q_A"}, order)
}

func TestDispatcherActivateIsEdgeTriggered(t *testing.T) {
	d := NewDispatcher(nil)

	var count int
	d.Subscribe(func(MediaChange) { count++ })

	d.Activate("Q_A")
	d.Activate("Q_A") // already matching, no transition
	assert.Equal(t, 1, count)
	assert.True(t, d.IsActive("Q_A"))

	d.Deactivate("Q_A")
	d.Deactivate("Q_A")
	assert.Equal(t, 2, count)
	assert.False(t, d.IsActive("Q_A"))
}

func TestDispatcherObserverFilters(t *testing.T) {
	d := NewDispatcher(nil)

	var got []string
	matchesOnly := func(c MediaChange) bool { return c.Matches }
	d.Subscribe(func(c MediaChange) { got = append(got, c.MediaQuery) }, matchesOnly)

	d.Activate("Q_A")
	d.Deactivate("Q_A")

	assert.Equal(t, []string{"Q_A"}, got)
}

func TestDispatcherStreamFilterHaltsFanOut(t *testing.T) {
	d := NewDispatcher(nil)

	var filterCalls int
	var delivered int
	d.AddFilter(func(c MediaChange) bool {
		filterCalls++
		return false
	})
	d.Subscribe(func(MediaChange) { delivered++ })
	d.Subscribe(func(MediaChange) { delivered++ })

	d.Activate("Q_A")

	// The stream filter runs once per change, not once per observer.
	assert.Equal(t, 1, filterCalls)
	assert.Zero(t, delivered)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher(nil)

	var count int
	unsubscribe := d.Subscribe(func(MediaChange) { count++ })

	d.Activate("Q_A")
	unsubscribe()
	d.Deactivate("Q_A")

	assert.Equal(t, 1, count)
}

func TestDispatcherWithPrintHook(t *testing.T) {
	// End-to-end wiring: the hook's predicate installed as the stream
	// filter keeps downstream observers blind to print transitions and to
	// anything delivered while printing.
	reg := scenarioRegistry()
	hook := NewPrintHook(reg, []string{"md", "lg"}, nil)
	target := &fakeTarget{}

	d := NewDispatcher(nil)
	d.RegisterQuery(hook.WithPrintQuery(reg.Queries())...)
	d.AddFilter(hook.Intercept(target))

	var seen []string
	d.Subscribe(func(c MediaChange) { seen = append(seen, c.MediaQuery) })

	d.Activate("Q_SM")
	d.Deactivate("Q_SM")
	d.Activate("print")
	d.Activate("Q_MD") // host noise during printing
	d.Deactivate("print")
	d.Activate("Q_LG")

	// Downstream saw only the ordinary, out-of-print traffic.
	assert.Equal(t, []string{"Q_SM", "Q_SM", "Q_LG"}, seen)

	// The print cycle drove the target through force-and-restore.
	require.NotEmpty(t, target.queries())
	assert.Equal(t, []string{"Q_SM"}, target.queries())
	assert.Equal(t, 2, target.styleCalls)
}
