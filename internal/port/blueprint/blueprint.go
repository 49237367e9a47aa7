package blueprint

import "context"

// Blueprint is a template directory available as a source for a project's
// blueprint prompt. Path is the entry name relative to the configured root.
type Blueprint struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Source enumerates blueprint templates and produces blueprint content.
// The service treats the content as an opaque string.
type Source interface {
	// List returns the available blueprints sorted by name. A missing root
	// directory is created and yields an empty catalog.
	List(ctx context.Context) ([]Blueprint, error)

	// Content produces the blueprint text for the given path.
	Content(ctx context.Context, path string) (string, error)
}
