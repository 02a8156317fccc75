package mediaquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMediaChangeDefaultsQuery(t *testing.T) {
	c := NewMediaChange(true, "")
	assert.Equal(t, "all", c.MediaQuery)
	assert.True(t, c.Matches)
}

func TestMergeAlias(t *testing.T) {
	c := NewMediaChange(true, "Q_MD")
	c.Property = "flex"
	c.Value = "row wrap"

	merged := MergeAlias(c, &Breakpoint{Alias: "gt-sm", MediaQuery: "Q_MD", Priority: -850})

	assert.Equal(t, "gt-sm", merged.MQAlias)
	assert.Equal(t, "GtSm", merged.Suffix)
	assert.Equal(t, -850, merged.Priority)

	// Auxiliary metadata is untouched.
	assert.Equal(t, "flex", merged.Property)
	assert.Equal(t, "row wrap", merged.Value)

	// The source value is not mutated.
	assert.Empty(t, c.MQAlias)
}

func TestMergeAliasNilBreakpoint(t *testing.T) {
	c := NewMediaChange(false, "Q_X")
	merged := MergeAlias(c, nil)
	assert.Equal(t, c, merged)
}
