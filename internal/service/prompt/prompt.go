package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alanyang/promptdeck/internal/domain/event"
	domainprompt "github.com/alanyang/promptdeck/internal/domain/prompt"
	domainproject "github.com/alanyang/promptdeck/internal/domain/project"
	portblueprint "github.com/alanyang/promptdeck/internal/port/blueprint"
	portbus "github.com/alanyang/promptdeck/internal/port/eventbus"
	portproject "github.com/alanyang/promptdeck/internal/port/project"
	portprompt "github.com/alanyang/promptdeck/internal/port/prompt"
)

// CreateInput is the user-supplied part of a new prompt. Category and
// project scoping are decided by the operation, never by the caller.
type CreateInput struct {
	Name    string
	Content string
}

// Service enforces the category rules for prompts: which categories may be
// created where, the one-blueprint-per-project upsert, and attachment
// toggling against the active project.
type Service struct {
	repo       portprompt.Repository
	projects   portproject.ActiveProvider
	blueprints portblueprint.Source
	bus        portbus.EventBus
}

func NewService(repo portprompt.Repository, projects portproject.ActiveProvider, blueprints portblueprint.Source, bus portbus.EventBus) *Service {
	return &Service{repo: repo, projects: projects, blueprints: blueprints, bus: bus}
}

// Get returns the prompt or a not-found error carrying the id.
func (s *Service) Get(ctx context.Context, id int64) (domainprompt.Prompt, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domainprompt.Prompt{}, err
	}
	return p, nil
}

// CreateGlobal creates a GLOBAL prompt. Global prompts are never bound to a
// project regardless of the current context.
func (s *Service) CreateGlobal(ctx context.Context, in CreateInput) (domainprompt.Prompt, error) {
	created, err := s.repo.Create(ctx, domainprompt.Prompt{
		Name:    in.Name,
		Type:    domainprompt.TypeGlobal,
		Content: in.Content,
	})
	if err != nil {
		return domainprompt.Prompt{}, err
	}
	s.publish(ctx, event.TypePromptCreated, created.ID)
	return created, nil
}

// CreateProject creates a PROJECT prompt bound to the active project.
func (s *Service) CreateProject(ctx context.Context, in CreateInput) (domainprompt.Prompt, error) {
	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return domainprompt.Prompt{}, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return domainprompt.Prompt{}, &domainprompt.ActiveProjectRequiredError{Action: "create a project prompt"}
	}

	created, err := s.repo.Create(ctx, domainprompt.Prompt{
		Name:      in.Name,
		Type:      domainprompt.TypeProject,
		Content:   in.Content,
		ProjectID: &active.ID,
	})
	if err != nil {
		return domainprompt.Prompt{}, err
	}
	s.publish(ctx, event.TypePromptCreated, created.ID)
	return created, nil
}

// Update applies the patch to name, content and source_path. Type and
// project binding are immutable through this path, so a tombstoned prompt
// (project deleted, project_id nulled) can still be edited but never
// re-categorized here.
func (s *Service) Update(ctx context.Context, id int64, patch domainprompt.Patch) (domainprompt.Prompt, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return domainprompt.Prompt{}, err
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domainprompt.Prompt{}, err
	}
	s.publish(ctx, event.TypePromptUpdated, updated.ID)
	return updated, nil
}

// Delete removes the prompt. Attachments cascade away in storage. The load
// first surfaces not-found instead of a silent no-op delete.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, event.TypePromptDeleted, id)
	return nil
}

// UpsertBlueprint generates blueprint content from path and creates or
// updates the active project's single BLUEPRINT prompt. The bool reports
// whether the prompt was created (true) or updated (false).
func (s *Service) UpsertBlueprint(ctx context.Context, path string) (domainprompt.Prompt, bool, error) {
	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return domainprompt.Prompt{}, false, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return domainprompt.Prompt{}, false, &domainprompt.ActiveProjectRequiredError{Action: "create a blueprint prompt"}
	}

	existing, err := s.repo.FindProjectBlueprint(ctx, active.ID)
	found := err == nil
	if err != nil && !errors.Is(err, domainprompt.ErrNotFound) {
		return domainprompt.Prompt{}, false, err
	}

	content, err := s.blueprints.Content(ctx, path)
	if err != nil {
		return domainprompt.Prompt{}, false, fmt.Errorf("generating blueprint content: %w", err)
	}
	name := domainprompt.BlueprintName(active.Name)

	if found {
		updated, err := s.repo.Update(ctx, existing.ID, domainprompt.Patch{
			Name:       &name,
			Content:    &content,
			SourcePath: &path,
		})
		if err != nil {
			return domainprompt.Prompt{}, false, err
		}
		s.publish(ctx, event.TypeBlueprintUpserted, updated.ID)
		return updated, false, nil
	}

	created, err := s.repo.Create(ctx, domainprompt.Prompt{
		Name:       name,
		Type:       domainprompt.TypeBlueprint,
		Content:    content,
		SourcePath: &path,
		ProjectID:  &active.ID,
	})
	if err != nil {
		return domainprompt.Prompt{}, false, err
	}
	s.publish(ctx, event.TypeBlueprintUpserted, created.ID)
	return created, true, nil
}

// DeleteBlueprint removes the active project's blueprint prompt. Absence is
// an error at this layer; the HTTP layer decides whether to swallow it.
func (s *Service) DeleteBlueprint(ctx context.Context) error {
	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return &domainprompt.ActiveProjectRequiredError{Action: "delete a blueprint prompt"}
	}

	existing, err := s.repo.FindProjectBlueprint(ctx, active.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.publish(ctx, event.TypeBlueprintDeleted, existing.ID)
	return nil
}

// ToggleAttachment attaches the prompt to the active project if it is not
// attached, and detaches it otherwise. The returned bool is the post-toggle
// state.
func (s *Service) ToggleAttachment(ctx context.Context, promptID int64) (domainprompt.Prompt, bool, error) {
	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return domainprompt.Prompt{}, false, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return domainprompt.Prompt{}, false, &domainprompt.ActiveProjectRequiredError{Action: "attach or detach prompts"}
	}

	p, err := s.repo.Get(ctx, promptID)
	if err != nil {
		return domainprompt.Prompt{}, false, err
	}

	attachment, err := s.repo.FindAttachment(ctx, promptID, active.ID)
	attached := err == nil
	if err != nil && !errors.Is(err, domainprompt.ErrNotFound) {
		return domainprompt.Prompt{}, false, err
	}

	if attached {
		if err := s.repo.Detach(ctx, attachment); err != nil {
			return domainprompt.Prompt{}, false, err
		}
	} else {
		if _, err := s.repo.Attach(ctx, promptID, active.ID); err != nil {
			return domainprompt.Prompt{}, false, err
		}
	}
	s.publish(ctx, event.TypeAttachmentToggled, promptID)
	return p, !attached, nil
}

// GlobalPrompts returns all GLOBAL prompts ordered by name.
func (s *Service) GlobalPrompts(ctx context.Context) ([]domainprompt.Prompt, error) {
	prompts, err := s.repo.ListGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("list global prompts: %w", err)
	}
	return prompts, nil
}

// ProjectPrompts returns the project's PROJECT prompts ordered by name, or
// an empty list when project is nil.
func (s *Service) ProjectPrompts(ctx context.Context, project *domainproject.Project) ([]domainprompt.Prompt, error) {
	if project == nil {
		return []domainprompt.Prompt{}, nil
	}
	prompts, err := s.repo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("list project prompts: %w", err)
	}
	return prompts, nil
}

// BlueprintPrompt returns the active project's blueprint prompt, with
// ok=false when there is no active project or no blueprint prompt.
func (s *Service) BlueprintPrompt(ctx context.Context) (domainprompt.Prompt, bool, error) {
	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return domainprompt.Prompt{}, false, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return domainprompt.Prompt{}, false, nil
	}

	p, err := s.repo.FindProjectBlueprint(ctx, active.ID)
	if err != nil {
		if errors.Is(err, domainprompt.ErrNotFound) {
			return domainprompt.Prompt{}, false, nil
		}
		return domainprompt.Prompt{}, false, err
	}
	return p, true, nil
}

// ActiveProject exposes the active project for read-side composition.
func (s *Service) ActiveProject(ctx context.Context) (domainproject.Project, bool, error) {
	return s.projects.Active(ctx)
}

// AttachedPrompts lists the prompts attached to the given project, ordered
// by name.
func (s *Service) AttachedPrompts(ctx context.Context, projectID int64) ([]domainprompt.Prompt, error) {
	prompts, err := s.repo.AttachedPrompts(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list attached prompts: %w", err)
	}
	return prompts, nil
}

// SessionPrompts lists the prompts attached to a chat session. Session
// attachments are written by the chat subsystem; this is a read-only view.
func (s *Service) SessionPrompts(ctx context.Context, sessionID int64) ([]domainprompt.Prompt, error) {
	prompts, err := s.repo.SessionAttachments(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session prompts: %w", err)
	}
	return prompts, nil
}

func (s *Service) publish(ctx context.Context, t event.Type, id int64) {
	if err := s.bus.Publish(ctx, event.New(t, id)); err != nil {
		slog.ErrorContext(ctx, "failed to publish prompt event", "type", t, "prompt_id", id, "error", err)
	}
}
