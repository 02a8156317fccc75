package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validateYAML(t *testing.T, content string) error {
	t.Helper()

	v, err := NewValidator()
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(content), &raw))
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	return v.ValidateBytes(data)
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	err := validateYAML(t, `
version: "1.0"
media:
  print_with_breakpoints: [md, lg]
  breakpoints:
    - alias: tablet
      media_query: "screen and (min-width: 600px)"
      priority: 850
logging:
  level: debug
`)
	assert.NoError(t, err)
}

func TestValidateRejectsBreakpointWithoutQuery(t *testing.T) {
	err := validateYAML(t, `
media:
  breakpoints:
    - alias: tablet
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media_query")
}

func TestValidateRejectsUnknownMediaKey(t *testing.T) {
	err := validateYAML(t, `
media:
  force_breakpoints: [md]
`)
	assert.Error(t, err)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	err := validateYAML(t, `
logging:
  level: loud
`)
	assert.Error(t, err)
}
