package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpreset/internal/cli/config"
	"github.com/leapstack-labs/lintpreset/internal/cli/testutil"
	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
)

// loadProject loads the test project's configuration as the root command would.
func loadProject(t *testing.T) string {
	t.Helper()
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	_, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	return dir
}

func TestProject_Ignored(t *testing.T) {
	loadProject(t)

	out, _, err := run(t, NewIgnoredCommand(), "src/generated/client.ts", "node_modules/react/index.js", "src/App.tsx")
	require.NoError(t, err)

	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "| src/generated/client.ts | true | **/generated/** |")
	assert.Contains(t, out, "| node_modules/react/index.js | true | **/node_modules/** |")
	assert.Contains(t, out, "| src/App.tsx | false |")
}

func TestProject_PrintConfig(t *testing.T) {
	loadProject(t)

	out, _, err := run(t, NewPrintConfigCommand(), "src/App.tsx", "--rule", "prettier/prettier")
	require.NoError(t, err)

	testutil.AssertValidMarkdown(t, out)
	testutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "printWidth=100")
	assert.Contains(t, out, "## Formatter")
	assert.Contains(t, out, "| Print width | 100 |")
}

func TestProject_SelfTestUsesConfiguredScenarios(t *testing.T) {
	loadProject(t)

	out, _, err := run(t, NewSelfTestCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "## project")
	assert.Contains(t, out, "2 passed, 0 failed, 0 skipped")
}

func TestPrintEffective_TextStyles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg, err := flatconfig.Merge(flatconfig.Fragment{Name: "base", Ignores: []string{"**/vendor/**"}})
	require.NoError(t, err)
	cfg = cfg.WithBasePath(absPath("."))

	tr := testutil.NewTestRendererText()
	printEffective(tr.Renderer, cfg, "vendor/a.js", cfg.Resolve("vendor/a.js"))

	assert.Contains(t, testutil.StripANSI(tr.Output()), `vendor/a.js is ignored by "**/vendor/**"`)
	assert.Empty(t, tr.ErrorOutput())

	md := testutil.NewTestRendererMarkdown()
	printEffective(md.Renderer, cfg, "vendor/a.js", cfg.Resolve("vendor/a.js"))
	assert.Contains(t, md.Output(), "- **Ignored:**")
}
