package mediaquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvzhenbang/flex-layout/config"
)

func TestFindByAlias(t *testing.T) {
	reg := NewDefaultRegistry()

	md := reg.FindByAlias("md")
	require.NotNil(t, md)
	assert.Equal(t, "md", md.Alias)
	assert.Equal(t, 800, md.Priority)

	// Suffix lookup is a case-insensitive fallback.
	gtSm := reg.FindByAlias("GtSm")
	require.NotNil(t, gtSm)
	assert.Equal(t, "gt-sm", gtSm.Alias)

	assert.Nil(t, reg.FindByAlias("nope"))
	assert.Nil(t, reg.FindByAlias(""))
}

func TestFindByQuery(t *testing.T) {
	reg := NewDefaultRegistry()

	bp := reg.FindByQuery("screen and (min-width: 960px) and (max-width: 1279.98px)")
	require.NotNil(t, bp)
	assert.Equal(t, "md", bp.Alias)

	assert.Nil(t, reg.FindByQuery("screen and (min-width: 1px)"))
}

func TestRegistryDerivesSuffixes(t *testing.T) {
	reg := NewRegistry([]*Breakpoint{
		{Alias: "lt-md", MediaQuery: "q1", Priority: 10},
	})
	bp := reg.FindByAlias("lt-md")
	require.NotNil(t, bp)
	assert.Equal(t, "LtMd", bp.Suffix)
}

func TestRegistryLaterAliasOverrides(t *testing.T) {
	reg := NewRegistry([]*Breakpoint{
		{Alias: "md", MediaQuery: "old-query", Priority: 800},
		{Alias: "md", MediaQuery: "new-query", Priority: 810},
	})

	bp := reg.FindByAlias("md")
	require.NotNil(t, bp)
	assert.Equal(t, "new-query", bp.MediaQuery)
	assert.Nil(t, reg.FindByQuery("old-query"))
}

func TestFromConfigMergesOverDefaults(t *testing.T) {
	reg := FromConfig(config.MediaConfig{
		Breakpoints: []config.BreakpointConfig{
			{Alias: "md", MediaQuery: "custom-md", Priority: 805},
			{Alias: "kiosk", MediaQuery: "screen and (min-width: 2560px)", Priority: 500},
		},
	})

	md := reg.FindByAlias("md")
	require.NotNil(t, md)
	assert.Equal(t, "custom-md", md.MediaQuery)
	assert.Equal(t, 805, md.Priority)

	require.NotNil(t, reg.FindByAlias("kiosk"))
	require.NotNil(t, reg.FindByAlias("xs"), "defaults survive the merge")
}

func TestFromConfigDisableDefaults(t *testing.T) {
	reg := FromConfig(config.MediaConfig{
		DisableDefaults: true,
		Breakpoints: []config.BreakpointConfig{
			{Alias: "only", MediaQuery: "q-only", Priority: 1},
		},
	})

	assert.Len(t, reg.Items(), 1)
	assert.Nil(t, reg.FindByAlias("xs"))
	assert.NotNil(t, reg.FindByAlias("only"))
}

func TestSortedItemsDescending(t *testing.T) {
	reg := NewDefaultRegistry()
	items := reg.SortedItems()
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Priority, items[i].Priority)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	reg := NewDefaultRegistry()
	items := reg.Items()
	items[0] = nil
	assert.NotNil(t, reg.Items()[0])
}
