//go:build integration

package prompt_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgproject "github.com/alanyang/promptdeck/internal/adapter/postgres/project"
	pgprompt "github.com/alanyang/promptdeck/internal/adapter/postgres/prompt"
	domainproject "github.com/alanyang/promptdeck/internal/domain/project"
	domainprompt "github.com/alanyang/promptdeck/internal/domain/prompt"
	"github.com/alanyang/promptdeck/internal/testutil"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func makeProject(t *testing.T, ctx context.Context, r *pgproject.Repository) domainproject.Project {
	t.Helper()
	created, err := r.Create(ctx, "t-"+uuid.New().String()[:8])
	require.NoError(t, err)
	return created
}

func makeGlobal(t *testing.T, ctx context.Context, r *pgprompt.Repository) domainprompt.Prompt {
	t.Helper()
	created, err := r.Create(ctx, domainprompt.Prompt{
		Name:    "g-" + uuid.New().String()[:8],
		Type:    domainprompt.TypeGlobal,
		Content: "content",
	})
	require.NoError(t, err)
	return created
}

// ── CRUD ──────────────────────────────────────────────────────────────────────

func TestCreateGetUpdateDelete(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)

	created := makeGlobal(t, ctx, repo)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	// Partial update: only content changes, name is preserved.
	newContent := "updated"
	updated, err := repo.Update(ctx, created.ID, domainprompt.Patch{Content: &newContent})
	require.NoError(t, err)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, "updated", updated.Content)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainprompt.ErrNotFound)
}

func TestCreate_DuplicateNameSameScope(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)

	created := makeGlobal(t, ctx, repo)

	// Same name, same (null) project bucket.
	_, err := repo.Create(ctx, domainprompt.Prompt{
		Name:    created.Name,
		Type:    domainprompt.TypeGlobal,
		Content: "other",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainprompt.ErrAlreadyExists)
}

func TestCreate_SameNameDifferentScope(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)
	projects := pgproject.New(pool)

	created := makeGlobal(t, ctx, repo)
	proj := makeProject(t, ctx, projects)

	// The same name under a project scope is a different bucket.
	_, err := repo.Create(ctx, domainprompt.Prompt{
		Name:      created.Name,
		Type:      domainprompt.TypeProject,
		Content:   "scoped",
		ProjectID: &proj.ID,
	})
	require.NoError(t, err)
}

// ── blueprint uniqueness ──────────────────────────────────────────────────────

func TestOneBlueprintPerProject(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)
	projects := pgproject.New(pool)

	proj := makeProject(t, ctx, projects)
	path := "fastapi"

	first, err := repo.Create(ctx, domainprompt.Prompt{
		Name:       "Blueprint: " + proj.Name,
		Type:       domainprompt.TypeBlueprint,
		Content:    "<blueprint/>",
		SourcePath: &path,
		ProjectID:  &proj.ID,
	})
	require.NoError(t, err)

	// A second blueprint for the same project hits the partial unique index
	// even under a different name.
	_, err = repo.Create(ctx, domainprompt.Prompt{
		Name:       "another name",
		Type:       domainprompt.TypeBlueprint,
		Content:    "<blueprint2/>",
		SourcePath: &path,
		ProjectID:  &proj.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainprompt.ErrAlreadyExists)

	got, err := repo.FindProjectBlueprint(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestFindProjectBlueprint_Absent(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)
	projects := pgproject.New(pool)

	proj := makeProject(t, ctx, projects)

	_, err := repo.FindProjectBlueprint(ctx, proj.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainprompt.ErrNotFound)
	assert.Equal(t, "Blueprint prompt not found for the active project.", err.Error())
}

// ── attachments ───────────────────────────────────────────────────────────────

func TestAttachDetach(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)
	projects := pgproject.New(pool)

	proj := makeProject(t, ctx, projects)
	p := makeGlobal(t, ctx, repo)

	_, err := repo.FindAttachment(ctx, p.ID, proj.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainprompt.ErrNotFound)

	a, err := repo.Attach(ctx, p.ID, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, a.PromptID)

	// Attaching twice is not an error.
	_, err = repo.Attach(ctx, p.ID, proj.ID)
	require.NoError(t, err)

	attached, err := repo.AttachedPrompts(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, attached, 1)
	assert.Equal(t, p.ID, attached[0].ID)

	require.NoError(t, repo.Detach(ctx, a))

	attached, err = repo.AttachedPrompts(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, attached)
}

func TestAttachmentsCascadeOnPromptDelete(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)
	projects := pgproject.New(pool)

	proj := makeProject(t, ctx, projects)
	p := makeGlobal(t, ctx, repo)

	_, err := repo.Attach(ctx, p.ID, proj.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID))

	attachments, err := repo.ProjectAttachments(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, attachments)
}

// ── tombstones ────────────────────────────────────────────────────────────────

func TestProjectDeleteTombstonesPrompts(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)
	projects := pgproject.New(pool)

	proj := makeProject(t, ctx, projects)
	created, err := repo.Create(ctx, domainprompt.Prompt{
		Name:      "p-" + uuid.New().String()[:8],
		Type:      domainprompt.TypeProject,
		Content:   "scoped",
		ProjectID: &proj.ID,
	})
	require.NoError(t, err)

	require.NoError(t, projects.Delete(ctx, proj.ID))

	// The prompt row survives with its binding nulled.
	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ProjectID)

	// Tombstones no longer show up in project listings.
	listed, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

// ── listings ──────────────────────────────────────────────────────────────────

func TestListByProject_ExcludesBlueprints(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgprompt.New(pool)
	projects := pgproject.New(pool)

	proj := makeProject(t, ctx, projects)
	path := "fastapi"

	_, err := repo.Create(ctx, domainprompt.Prompt{
		Name:      "p-" + uuid.New().String()[:8],
		Type:      domainprompt.TypeProject,
		Content:   "scoped",
		ProjectID: &proj.ID,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domainprompt.Prompt{
		Name:       "Blueprint: " + proj.Name,
		Type:       domainprompt.TypeBlueprint,
		Content:    "<blueprint/>",
		SourcePath: &path,
		ProjectID:  &proj.ID,
	})
	require.NoError(t, err)

	listed, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domainprompt.TypeProject, listed[0].Type)
}
