package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	rules := Default()

	assert.Equal(t, []string{".ts", ".tsx", ".js", ".jsx"}, rules.Extensions)
	assert.Contains(t, rules.ExcludeDirs, "node_modules")
	assert.Contains(t, rules.ExcludeFiles, "logger.ts")
	assert.Equal(t, StripInfo, rules.StripLevels)
	assert.Contains(t, rules.Markers, "DEBUG")
	assert.Contains(t, rules.VerbosePatterns, "Component mounted")
	assert.Equal(t, "import { createLogger } from '@/lib/utils/logger';", rules.ImportLine)
	assert.Contains(t, rules.InstanceTemplate, "%s")
}

func TestLoad_RootConfigOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	yaml := "strip_levels: all\nexclude_dirs:\n  - node_modules\n  - generated\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".logsweep.yaml"), []byte(yaml), 0o644))

	rules, err := Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, StripAll, rules.StripLevels)
	assert.Equal(t, []string{"node_modules", "generated"}, rules.ExcludeDirs)

	// Keys the file does not set keep their defaults.
	assert.Equal(t, []string{".ts", ".tsx", ".js", ".jsx"}, rules.Extensions)
}

func TestLoad_MissingRootConfigIsFine(t *testing.T) {
	rules, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, StripInfo, rules.StripLevels)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_ExplicitFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rules.yaml")
	yaml := "markers:\n  - FIXME\ninstance_template: \"const log = mkLogger('%s');\"\n"
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0o644))

	rules, err := Load("", file)
	require.NoError(t, err)

	assert.Equal(t, []string{"FIXME"}, rules.Markers)
	assert.Equal(t, "const log = mkLogger('%s');", rules.InstanceTemplate)
}

func TestValidate(t *testing.T) {
	rules := Default()
	require.NoError(t, rules.Validate())

	bad := Default()
	bad.StripLevels = "warnings"
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strip_levels")

	bad = Default()
	bad.InstanceTemplate = "const logger = createLogger();"
	err = bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instance_template")

	bad = Default()
	bad.EmojiRanges = []string{"not-hex"}
	require.Error(t, bad.Validate())
}

func TestParsedEmojiRanges(t *testing.T) {
	rules := Rules{EmojiRanges: []string{"1F300-1F9FF", "2764"}}

	ranges, err := rules.ParsedEmojiRanges()
	require.NoError(t, err)
	require.Len(t, ranges, 2)

	assert.Equal(t, rune(0x1F300), ranges[0].Lo)
	assert.Equal(t, rune(0x1F9FF), ranges[0].Hi)

	// A single code point stands for a one-element range.
	assert.Equal(t, rune(0x2764), ranges[1].Lo)
	assert.Equal(t, rune(0x2764), ranges[1].Hi)

	inverted := Rules{EmojiRanges: []string{"FFFF-0001"}}
	_, err = inverted.ParsedEmojiRanges()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upper bound")
}
