package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainprompt "github.com/alanyang/promptdeck/internal/domain/prompt"
	portprompt "github.com/alanyang/promptdeck/internal/port/prompt"
)

var _ portprompt.Repository = (*Repository)(nil)

const promptColumns = "id, name, type, content, source_path, project_id, created_at"

// Repository implements port/prompt.Repository using Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func scanPrompt(row pgx.Row) (domainprompt.Prompt, error) {
	var p domainprompt.Prompt
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Content, &p.SourcePath, &p.ProjectID, &p.CreatedAt)
	return p, err
}

func (r *Repository) Get(ctx context.Context, id int64) (domainprompt.Prompt, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+promptColumns+` FROM prompts WHERE id = $1`, id)
	p, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.Prompt{}, &domainprompt.NotFoundError{ID: id}
		}
		return domainprompt.Prompt{}, fmt.Errorf("querying prompt: %w", err)
	}
	return p, nil
}

func (r *Repository) Create(ctx context.Context, p domainprompt.Prompt) (domainprompt.Prompt, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO prompts (name, type, content, source_path, project_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+promptColumns,
		p.Name, p.Type, p.Content, p.SourcePath, p.ProjectID)

	out, err := scanPrompt(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domainprompt.Prompt{}, &domainprompt.AlreadyExistsError{Name: p.Name}
		}
		return domainprompt.Prompt{}, fmt.Errorf("inserting prompt: %w", err)
	}
	return out, nil
}

// Update applies the patch; nil patch fields keep the stored value.
func (r *Repository) Update(ctx context.Context, id int64, patch domainprompt.Patch) (domainprompt.Prompt, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE prompts
		 SET name        = COALESCE($2, name),
		     content     = COALESCE($3, content),
		     source_path = COALESCE($4, source_path)
		 WHERE id = $1
		 RETURNING `+promptColumns,
		id, patch.Name, patch.Content, patch.SourcePath)

	out, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.Prompt{}, &domainprompt.NotFoundError{ID: id}
		}
		if isUniqueViolation(err) {
			name := ""
			if patch.Name != nil {
				name = *patch.Name
			}
			return domainprompt.Prompt{}, &domainprompt.AlreadyExistsError{Name: name}
		}
		return domainprompt.Prompt{}, fmt.Errorf("updating prompt: %w", err)
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM prompts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	return nil
}

func (r *Repository) ListGlobal(ctx context.Context) ([]domainprompt.Prompt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+promptColumns+` FROM prompts WHERE type = $1 ORDER BY name`,
		domainprompt.TypeGlobal)
	if err != nil {
		return nil, fmt.Errorf("listing global prompts: %w", err)
	}
	return collectPrompts(rows)
}

func (r *Repository) ListByProject(ctx context.Context, projectID int64) ([]domainprompt.Prompt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+promptColumns+` FROM prompts
		 WHERE project_id = $1 AND type = $2
		 ORDER BY name`,
		projectID, domainprompt.TypeProject)
	if err != nil {
		return nil, fmt.Errorf("listing project prompts: %w", err)
	}
	return collectPrompts(rows)
}

func (r *Repository) FindProjectBlueprint(ctx context.Context, projectID int64) (domainprompt.Prompt, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+promptColumns+` FROM prompts
		 WHERE project_id = $1 AND type = $2`,
		projectID, domainprompt.TypeBlueprint)
	p, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.Prompt{}, &domainprompt.BlueprintNotFoundError{}
		}
		return domainprompt.Prompt{}, fmt.Errorf("querying blueprint prompt: %w", err)
	}
	return p, nil
}

func (r *Repository) AttachedPrompts(ctx context.Context, projectID int64) ([]domainprompt.Prompt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.type, p.content, p.source_path, p.project_id, p.created_at
		 FROM prompts p
		 JOIN project_prompt_attachments a ON a.prompt_id = p.id
		 WHERE a.project_id = $1
		 ORDER BY p.name`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("listing attached prompts: %w", err)
	}
	return collectPrompts(rows)
}

func (r *Repository) FindAttachment(ctx context.Context, promptID, projectID int64) (domainprompt.Attachment, error) {
	var a domainprompt.Attachment
	err := r.pool.QueryRow(ctx,
		`SELECT project_id, prompt_id FROM project_prompt_attachments
		 WHERE prompt_id = $1 AND project_id = $2`,
		promptID, projectID).Scan(&a.ProjectID, &a.PromptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.Attachment{}, &domainprompt.NotFoundError{ID: promptID}
		}
		return domainprompt.Attachment{}, fmt.Errorf("querying attachment: %w", err)
	}
	return a, nil
}

func (r *Repository) ProjectAttachments(ctx context.Context, projectID int64) ([]domainprompt.Attachment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT project_id, prompt_id FROM project_prompt_attachments WHERE project_id = $1`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project attachments: %w", err)
	}
	defer rows.Close()

	var attachments []domainprompt.Attachment
	for rows.Next() {
		var a domainprompt.Attachment
		if err := rows.Scan(&a.ProjectID, &a.PromptID); err != nil {
			return nil, fmt.Errorf("scanning attachment row: %w", err)
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func (r *Repository) Attach(ctx context.Context, promptID, projectID int64) (domainprompt.Attachment, error) {
	var a domainprompt.Attachment
	err := r.pool.QueryRow(ctx,
		`INSERT INTO project_prompt_attachments (project_id, prompt_id)
		 VALUES ($1, $2)
		 RETURNING project_id, prompt_id`,
		projectID, promptID).Scan(&a.ProjectID, &a.PromptID)
	if err != nil {
		if isUniqueViolation(err) {
			// Already attached; toggling is the only writer, so report it as such.
			return domainprompt.Attachment{ProjectID: projectID, PromptID: promptID}, nil
		}
		return domainprompt.Attachment{}, fmt.Errorf("attaching prompt: %w", err)
	}
	return a, nil
}

func (r *Repository) Detach(ctx context.Context, a domainprompt.Attachment) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM project_prompt_attachments WHERE project_id = $1 AND prompt_id = $2`,
		a.ProjectID, a.PromptID)
	if err != nil {
		return fmt.Errorf("detaching prompt: %w", err)
	}
	return nil
}

func (r *Repository) SessionAttachments(ctx context.Context, sessionID int64) ([]domainprompt.Prompt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.type, p.content, p.source_path, p.project_id, p.created_at
		 FROM prompts p
		 JOIN session_prompt_attachments s ON s.prompt_id = p.id
		 WHERE s.session_id = $1
		 ORDER BY p.name`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing session attachments: %w", err)
	}
	return collectPrompts(rows)
}

func collectPrompts(rows pgx.Rows) ([]domainprompt.Prompt, error) {
	defer rows.Close()

	var prompts []domainprompt.Prompt
	for rows.Next() {
		var p domainprompt.Prompt
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Content, &p.SourcePath, &p.ProjectID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning prompt row: %w", err)
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
