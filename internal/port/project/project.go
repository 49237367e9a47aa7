package project

import (
	"context"

	domainproject "github.com/alanyang/promptdeck/internal/domain/project"
)

// ActiveProvider answers "which project, if any, is currently active?".
// The prompt service depends on this narrow view only.
type ActiveProvider interface {
	// Active returns the active project, or ok=false when none is set.
	Active(ctx context.Context) (domainproject.Project, bool, error)
}

// Repository is the storage abstraction for the project subsystem.
type Repository interface {
	ActiveProvider

	Create(ctx context.Context, name string) (domainproject.Project, error)
	GetByID(ctx context.Context, id int64) (domainproject.Project, error)
	List(ctx context.Context) ([]domainproject.Project, error)

	// SetActive marks the given project active and deactivates the rest.
	SetActive(ctx context.Context, id int64) (domainproject.Project, error)

	// Delete removes the project. Prompt rows referencing it are kept with
	// project_id nulled; attachments cascade away.
	Delete(ctx context.Context, id int64) error
}
