package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainproject "github.com/alanyang/promptdeck/internal/domain/project"
	portproject "github.com/alanyang/promptdeck/internal/port/project"
)

var _ portproject.Repository = (*Repository)(nil)

// ErrNotFound is returned when a referenced project id is absent.
var ErrNotFound = errors.New("project not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Active(ctx context.Context) (domainproject.Project, bool, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, is_active, created_at FROM projects WHERE is_active`)
	var p domainproject.Project
	if err := row.Scan(&p.ID, &p.Name, &p.IsActive, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainproject.Project{}, false, nil
		}
		return domainproject.Project{}, false, fmt.Errorf("querying active project: %w", err)
	}
	return p, true, nil
}

func (r *Repository) Create(ctx context.Context, name string) (domainproject.Project, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO projects (name) VALUES ($1)
		 RETURNING id, name, is_active, created_at`, name)
	var p domainproject.Project
	if err := row.Scan(&p.ID, &p.Name, &p.IsActive, &p.CreatedAt); err != nil {
		return domainproject.Project{}, fmt.Errorf("inserting project: %w", err)
	}
	return p, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (domainproject.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, is_active, created_at FROM projects WHERE id = $1`, id)
	var p domainproject.Project
	if err := row.Scan(&p.ID, &p.Name, &p.IsActive, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainproject.Project{}, ErrNotFound
		}
		return domainproject.Project{}, fmt.Errorf("querying project: %w", err)
	}
	return p, nil
}

func (r *Repository) List(ctx context.Context) ([]domainproject.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, is_active, created_at FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domainproject.Project
	for rows.Next() {
		var p domainproject.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// SetActive flips the single is_active flag inside one transaction so the
// partial unique index never sees two active rows.
func (r *Repository) SetActive(ctx context.Context, id int64) (domainproject.Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("beginning activate tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `UPDATE projects SET is_active = FALSE WHERE is_active`); err != nil {
		return domainproject.Project{}, fmt.Errorf("deactivating projects: %w", err)
	}

	row := tx.QueryRow(ctx,
		`UPDATE projects SET is_active = TRUE WHERE id = $1
		 RETURNING id, name, is_active, created_at`, id)
	var p domainproject.Project
	if err := row.Scan(&p.ID, &p.Name, &p.IsActive, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainproject.Project{}, ErrNotFound
		}
		return domainproject.Project{}, fmt.Errorf("activating project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domainproject.Project{}, fmt.Errorf("committing activate tx: %w", err)
	}
	return p, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
