package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/factsview/internal/config"
)

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_ReplacesWholeSection(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
view:
  page_sizes: [20]
  default_page_size: 20
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, []int{20}, target.View.PageSizes)
	assert.Equal(t, 20, target.View.DefaultPageSize)
	// Section replaced wholesale: the omitted field is zeroed.
	assert.Empty(t, target.View.StalePolicy)
	// Other sections untouched.
	assert.Equal(t, config.DefaultRecordsURL, target.API.RecordsURL)
}

func TestShallowMergeYAML_PartialViewSectionValidates(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
view:
  page_sizes: [5, 20]
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	require.NoError(t, target.Validate())

	assert.Equal(t, []int{5, 20}, target.View.PageSizes)
	assert.Equal(t, 5, target.View.DefaultPageSize)
	assert.Empty(t, target.View.StalePolicy)
}

func TestShallowMergeYAML_IgnoresUnknownKeys(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
theme: dark
logging:
  level: warn
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Default()
	before := *target
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, before.API, target.API)
	assert.Equal(t, before.View, target.View)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "x.yaml"))

	err := config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading overlay file")

	bad := writeOverlay(t, "view:\n  page_sizes: nope\n")
	err = config.ShallowMergeYAML(config.Default(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `applying overlay section "view"`)
}
