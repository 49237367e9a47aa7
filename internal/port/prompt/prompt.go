package prompt

import (
	"context"

	domainprompt "github.com/alanyang/promptdeck/internal/domain/prompt"
)

// Repository is the storage abstraction for prompts and their project
// attachments. Postgres is the shipped implementation; an in-memory one is
// a valid substitute for tests.
//
// Lookups return *domainprompt.NotFoundError when the row is absent. Create
// returns *domainprompt.AlreadyExistsError when the (name, project_id)
// uniqueness rule or the one-blueprint-per-project rule would be broken.
// Write primitives run inside the per-request session; the repository never
// opens transactions of its own.
type Repository interface {
	Get(ctx context.Context, id int64) (domainprompt.Prompt, error)
	Create(ctx context.Context, p domainprompt.Prompt) (domainprompt.Prompt, error)

	// Update applies the patch to the prompt; nil patch fields are preserved.
	Update(ctx context.Context, id int64, patch domainprompt.Patch) (domainprompt.Prompt, error)
	Delete(ctx context.Context, id int64) error

	// ListGlobal returns all GLOBAL prompts ordered by name ascending.
	ListGlobal(ctx context.Context) ([]domainprompt.Prompt, error)

	// ListByProject returns the project's PROJECT prompts ordered by name
	// ascending. BLUEPRINT prompts are excluded.
	ListByProject(ctx context.Context, projectID int64) ([]domainprompt.Prompt, error)

	// FindProjectBlueprint returns the project's single BLUEPRINT prompt.
	FindProjectBlueprint(ctx context.Context, projectID int64) (domainprompt.Prompt, error)

	// AttachedPrompts returns the prompts currently attached to the project,
	// ordered by name ascending.
	AttachedPrompts(ctx context.Context, projectID int64) ([]domainprompt.Prompt, error)

	FindAttachment(ctx context.Context, promptID, projectID int64) (domainprompt.Attachment, error)
	ProjectAttachments(ctx context.Context, projectID int64) ([]domainprompt.Attachment, error)
	Attach(ctx context.Context, promptID, projectID int64) (domainprompt.Attachment, error)
	Detach(ctx context.Context, a domainprompt.Attachment) error

	// SessionAttachments lists the prompts attached to a chat session.
	// The session attachment table is read-only in this core.
	SessionAttachments(ctx context.Context, sessionID int64) ([]domainprompt.Prompt, error)
}
