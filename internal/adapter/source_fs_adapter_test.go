package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplab/logsweep/internal/config"
	m "github.com/sweeplab/logsweep/internal/model"
)

func writeTree(t *testing.T, root string, paths map[string]string) {
	t.Helper()

	for rel, content := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.ts":                   "const a = 1;\n",
		"src/Button.test.tsx":          "test file\n",
		"src/logger.ts":                "export const createLogger = () => {};\n",
		"src/nested/util.js":           "const u = 1;\n",
		"src/node_modules/pkg/mod.js":  "module\n",
		"src/.git/hooks/pre-commit.js": "hook\n",
		"src/readme.md":                "docs\n",
	})

	fsAdapter := NewLocalSourceFSAdapter()
	rules := config.Default()

	files, err := fsAdapter.Get([]m.Path{m.Path(filepath.Join(root, "src"))}, rules)
	require.NoError(t, err)

	want := []m.Path{
		m.Path(filepath.Join(root, "src", "app.ts")),
		m.Path(filepath.Join(root, "src", "nested", "util.js")),
	}
	assert.Equal(t, want, files)
}

func TestLocalSourceFSAdapter_Get_DeduplicatesOverlappingRoots(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.ts":         "const a = 1;\n",
		"src/nested/util.js": "const u = 1;\n",
	})

	fsAdapter := NewLocalSourceFSAdapter()
	rules := config.Default()

	files, err := fsAdapter.Get([]m.Path{
		m.Path(filepath.Join(root, "src")),
		m.Path(filepath.Join(root, "src", "nested")),
	}, rules)
	require.NoError(t, err)

	assert.Len(t, files, 2)
}

func TestLocalSourceFSAdapter_Get_SingleFileRoot(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app.ts":    "const a = 1;\n",
		"readme.md": "docs\n",
	})

	fsAdapter := NewLocalSourceFSAdapter()
	rules := config.Default()

	files, err := fsAdapter.Get([]m.Path{m.Path(filepath.Join(root, "app.ts"))}, rules)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "app.ts"))}, files)

	// A file root that is not a candidate yields nothing, not an error.
	files, err = fsAdapter.Get([]m.Path{m.Path(filepath.Join(root, "readme.md"))}, rules)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLocalSourceFSAdapter_Get_MissingRoot(t *testing.T) {
	fsAdapter := NewLocalSourceFSAdapter()

	_, err := fsAdapter.Get([]m.Path{m.Path(filepath.Join(t.TempDir(), "absent"))}, config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root path error")
}

func TestLocalSourceFSAdapter_ReadWriteRoundTrip(t *testing.T) {
	root := t.TempDir()
	path := m.Path(filepath.Join(root, "app.ts"))

	fsAdapter := NewLocalSourceFSAdapter()

	require.NoError(t, fsAdapter.WriteFile(path, []byte("const a = 1;\n"), 0o644))

	content, err := fsAdapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "const a = 1;\n", string(content))

	info, err := fsAdapter.FileInfo(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestCandidate(t *testing.T) {
	rules := config.Default()

	tests := []struct {
		path string
		want bool
	}{
		{"src/app.ts", true},
		{"src/App.tsx", true},
		{"src/util.js", true},
		{"src/view.jsx", true},
		{"src/app.test.ts", false},
		{"src/app.spec.tsx", false},
		{"src/logger.ts", false},
		{"src/styles.css", false},
		{"src/data.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, candidate(filepath.FromSlash(tt.path), rules))
		})
	}
}

func TestNormalizeRootPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := normalizeRootPath("~/projects/app")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects", "app"), got)

	got, err = normalizeRootPath("")
	require.NoError(t, err)
	assert.Equal(t, ".", got)

	got, err = normalizeRootPath("src/../src/nested/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("src", "nested"), got)
}
