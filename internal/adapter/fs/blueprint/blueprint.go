package blueprint

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	portblueprint "github.com/alanyang/promptdeck/internal/port/blueprint"
)

var _ portblueprint.Source = (*Source)(nil)

// Source implements port/blueprint.Source over a root directory on disk.
// Every immediate subdirectory of the root is one blueprint; its files are
// the architectural reference emitted by Content.
type Source struct {
	root string
}

func New(root string) *Source {
	return &Source{root: root}
}

// List enumerates blueprint directories sorted by name. A missing root is
// created and yields an empty catalog. Non-directory entries are skipped.
func (s *Source) List(ctx context.Context) ([]portblueprint.Blueprint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading blueprints root: %w", err)
		}
		if err := os.MkdirAll(s.root, 0o755); err != nil {
			return nil, fmt.Errorf("creating blueprints root: %w", err)
		}
		return []portblueprint.Blueprint{}, nil
	}

	blueprints := make([]portblueprint.Blueprint, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		blueprints = append(blueprints, portblueprint.Blueprint{
			Name: entry.Name(),
			Path: entry.Name(),
		})
	}
	sort.Slice(blueprints, func(i, j int) bool { return blueprints[i].Name < blueprints[j].Name })
	return blueprints, nil
}

// Content walks the blueprint directory and emits its files wrapped in the
// envelope the assistant consumes. The path must resolve to a directory
// under the root; traversal outside it is rejected.
func (s *Source) Content(ctx context.Context, path string) (string, error) {
	dir, err := s.resolve(path)
	if err != nil {
		return "", err
	}

	var blocks []string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			slog.Warn("skipping unreadable blueprint file", "path", p, "error", err)
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		blocks = append(blocks, fmt.Sprintf("<file path=%q>\n%s\n</file>", filepath.ToSlash(rel), data))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("reading blueprint %q: %w", path, err)
	}

	return "<blueprint_architecture_example>\n" +
		"<description>\n" +
		"The following files represent the architectural blueprint for this project.\n" +
		"Use them as the definitive reference for code style, structure, and patterns.\n" +
		"</description>\n" +
		"<files>\n" +
		strings.Join(blocks, "\n\n") + "\n" +
		"</files>\n" +
		"</blueprint_architecture_example>", nil
}

// resolve joins path onto the root and refuses anything that escapes it or
// is not a directory.
func (s *Source) resolve(path string) (string, error) {
	cleaned := filepath.Clean(filepath.Join(s.root, filepath.FromSlash(path)))
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", fmt.Errorf("resolving blueprints root: %w", err)
	}
	dirAbs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolving blueprint path: %w", err)
	}
	if dirAbs != rootAbs && !strings.HasPrefix(dirAbs, rootAbs+string(os.PathSeparator)) {
		return "", fmt.Errorf("blueprint path %q escapes the blueprints root", path)
	}
	info, err := os.Stat(dirAbs)
	if err != nil {
		return "", fmt.Errorf("blueprint %q: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("blueprint %q is not a directory", path)
	}
	return dirAbs, nil
}
