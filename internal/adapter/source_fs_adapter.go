// Package adapter contains filesystem adapters for the logsweep CLI.
package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sweeplab/logsweep/internal/config"
	m "github.com/sweeplab/logsweep/internal/model"
)

// SourceFSAdapter abstracts filesystem operations the domain layer relies
// on when scanning and rewriting user projects. It hides direct os access
// so the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get enumerates candidate files under the provided roots, applying
	// the rule set's exclusion lists and deduplicating overlapping roots.
	Get(roots []m.Path, rules config.Rules) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile overwrites a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the
// local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects candidate files for the provided roots in walk order.
// A root may be a directory (walked recursively) or a single file.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, rules config.Rules) ([]m.Path, error) {
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	seen := make(map[string]struct{})

	var files []m.Path

	for _, root := range roots {
		rootStr, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootStr))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if candidate(rootStr, rules) {
				appendUnique(&files, seen, rootStr)
			}

			continue
		}

		err = filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != rootStr && excludedDir(d.Name(), rules) {
					return filepath.SkipDir
				}

				return nil
			}

			if candidate(path, rules) {
				appendUnique(&files, seen, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile overwrites content at path. The write is a whole-file
// replacement; no backup is kept.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func appendUnique(files *[]m.Path, seen map[string]struct{}, path string) {
	if _, ok := seen[path]; ok {
		return
	}

	seen[path] = struct{}{}
	*files = append(*files, m.Path(path))
}

func excludedDir(name string, rules config.Rules) bool {
	for _, ex := range rules.ExcludeDirs {
		if name == ex {
			return true
		}
	}

	return false
}

func candidate(path string, rules config.Rules) bool {
	ext := filepath.Ext(path)

	ok := false

	for _, want := range rules.Extensions {
		if ext == want {
			ok = true
			break
		}
	}

	if !ok {
		return false
	}

	base := filepath.Base(path)

	for _, name := range rules.ExcludeFiles {
		if base == name {
			return false
		}
	}

	for _, suffix := range rules.ExcludeSuffixes {
		if strings.HasSuffix(base, suffix) {
			return false
		}
	}

	return true
}

func normalizeRootPath(root string) (string, error) {
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(root, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		root = filepath.Join(home, suffix)
	}

	if root == "" {
		root = "."
	}

	return filepath.Clean(root), nil
}
