package page

import (
	"context"
	"errors"
	"fmt"
	"sort"

	domainproject "github.com/alanyang/promptdeck/internal/domain/project"
	domainprompt "github.com/alanyang/promptdeck/internal/domain/prompt"
	portblueprint "github.com/alanyang/promptdeck/internal/port/blueprint"
	portproject "github.com/alanyang/promptdeck/internal/port/project"
	portprompt "github.com/alanyang/promptdeck/internal/port/prompt"
)

// FormContext feeds the new/edit prompt form partial.
type FormContext struct {
	PromptType domainprompt.Type `json:"prompt_type"`
	ProjectID  *int64            `json:"project_id,omitempty"`
}

// EditFormContext feeds the edit form partial for an existing prompt.
type EditFormContext struct {
	Prompt domainprompt.Prompt `json:"prompt"`
}

// ItemContext feeds the single prompt item partial.
type ItemContext struct {
	Prompt     domainprompt.Prompt `json:"prompt"`
	IsAttached bool                `json:"is_attached"`
}

// ListContext feeds a prompt list partial.
type ListContext struct {
	Prompts           []domainprompt.Prompt  `json:"prompts"`
	AttachedPromptIDs []int64                `json:"attached_prompt_ids"`
	PromptType        domainprompt.Type      `json:"prompt_type"`
	ActiveProject     *domainproject.Project `json:"active_project,omitempty"`
}

// BlueprintListContext feeds the blueprint catalog partial.
type BlueprintListContext struct {
	Blueprints []portblueprint.Blueprint `json:"blueprints"`
	Prompt     *domainprompt.Prompt      `json:"prompt,omitempty"`
}

// PageContext feeds the full prompts page render.
type PageContext struct {
	GlobalPrompts     []domainprompt.Prompt     `json:"global_prompts"`
	ProjectPrompts    []domainprompt.Prompt     `json:"project_prompts"`
	ActiveProject     *domainproject.Project    `json:"active_project,omitempty"`
	BlueprintPrompt   *domainprompt.Prompt      `json:"blueprint_prompt,omitempty"`
	Blueprints        []portblueprint.Blueprint `json:"blueprints"`
	AttachedPromptIDs []int64                   `json:"attached_prompt_ids"`
}

// Service assembles the read-side context bundles consumed by the rendering
// layer. It performs no mutations; keeping the fan-out here keeps it off
// the command path.
type Service struct {
	repo       portprompt.Repository
	projects   portproject.ActiveProvider
	blueprints portblueprint.Source
}

func NewService(repo portprompt.Repository, projects portproject.ActiveProvider, blueprints portblueprint.Source) *Service {
	return &Service{repo: repo, projects: projects, blueprints: blueprints}
}

// NewGlobalForm needs no context beyond the category.
func (s *Service) NewGlobalForm() FormContext {
	return FormContext{PromptType: domainprompt.TypeGlobal}
}

// NewProjectForm requires an active project to scope the new prompt.
func (s *Service) NewProjectForm(ctx context.Context) (FormContext, error) {
	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return FormContext{}, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return FormContext{}, &domainprompt.ActiveProjectRequiredError{Action: "create a project prompt"}
	}
	return FormContext{PromptType: domainprompt.TypeProject, ProjectID: &active.ID}, nil
}

func (s *Service) EditForm(ctx context.Context, id int64) (EditFormContext, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return EditFormContext{}, err
	}
	return EditFormContext{Prompt: p}, nil
}

// View returns the prompt with its attachment state against the active
// project. IsAttached is false when no project is active.
func (s *Service) View(ctx context.Context, id int64) (ItemContext, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return ItemContext{}, err
	}

	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return ItemContext{}, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return ItemContext{Prompt: p}, nil
	}

	if _, err := s.repo.FindAttachment(ctx, id, active.ID); err != nil {
		if errors.Is(err, domainprompt.ErrNotFound) {
			return ItemContext{Prompt: p}, nil
		}
		return ItemContext{}, err
	}
	return ItemContext{Prompt: p, IsAttached: true}, nil
}

// Item builds an ItemContext from already-known state, used by the toggle
// handler which has the post-toggle state in hand.
func (s *Service) Item(p domainprompt.Prompt, isAttached bool) ItemContext {
	return ItemContext{Prompt: p, IsAttached: isAttached}
}

func (s *Service) GlobalList(ctx context.Context) (ListContext, error) {
	prompts, err := s.repo.ListGlobal(ctx)
	if err != nil {
		return ListContext{}, fmt.Errorf("list global prompts: %w", err)
	}
	return s.listContext(ctx, prompts, domainprompt.TypeGlobal)
}

func (s *Service) ProjectList(ctx context.Context) (ListContext, error) {
	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return ListContext{}, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return ListContext{
			Prompts:           []domainprompt.Prompt{},
			AttachedPromptIDs: []int64{},
			PromptType:        domainprompt.TypeProject,
		}, nil
	}

	prompts, err := s.repo.ListByProject(ctx, active.ID)
	if err != nil {
		return ListContext{}, fmt.Errorf("list project prompts: %w", err)
	}
	return s.listContext(ctx, prompts, domainprompt.TypeProject)
}

func (s *Service) BlueprintList(ctx context.Context) (BlueprintListContext, error) {
	blueprints, err := s.blueprints.List(ctx)
	if err != nil {
		return BlueprintListContext{}, fmt.Errorf("list blueprints: %w", err)
	}

	out := BlueprintListContext{Blueprints: blueprints}

	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return BlueprintListContext{}, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return out, nil
	}

	p, err := s.repo.FindProjectBlueprint(ctx, active.ID)
	if err != nil {
		if errors.Is(err, domainprompt.ErrNotFound) {
			return out, nil
		}
		return BlueprintListContext{}, err
	}
	out.Prompt = &p
	return out, nil
}

// Page assembles the full prompts page in one bundle.
func (s *Service) Page(ctx context.Context) (PageContext, error) {
	globals, err := s.repo.ListGlobal(ctx)
	if err != nil {
		return PageContext{}, fmt.Errorf("list global prompts: %w", err)
	}
	blueprints, err := s.blueprints.List(ctx)
	if err != nil {
		return PageContext{}, fmt.Errorf("list blueprints: %w", err)
	}

	out := PageContext{
		GlobalPrompts:     globals,
		ProjectPrompts:    []domainprompt.Prompt{},
		Blueprints:        blueprints,
		AttachedPromptIDs: []int64{},
	}

	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return PageContext{}, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return out, nil
	}
	out.ActiveProject = &active

	if out.ProjectPrompts, err = s.repo.ListByProject(ctx, active.ID); err != nil {
		return PageContext{}, fmt.Errorf("list project prompts: %w", err)
	}
	if bp, err := s.repo.FindProjectBlueprint(ctx, active.ID); err == nil {
		out.BlueprintPrompt = &bp
	} else if !errors.Is(err, domainprompt.ErrNotFound) {
		return PageContext{}, err
	}
	if out.AttachedPromptIDs, err = s.attachedIDs(ctx, active.ID); err != nil {
		return PageContext{}, err
	}
	return out, nil
}

func (s *Service) listContext(ctx context.Context, prompts []domainprompt.Prompt, t domainprompt.Type) (ListContext, error) {
	if prompts == nil {
		prompts = []domainprompt.Prompt{}
	}
	out := ListContext{Prompts: prompts, AttachedPromptIDs: []int64{}, PromptType: t}

	active, ok, err := s.projects.Active(ctx)
	if err != nil {
		return ListContext{}, fmt.Errorf("resolving active project: %w", err)
	}
	if !ok {
		return out, nil
	}
	out.ActiveProject = &active

	if out.AttachedPromptIDs, err = s.attachedIDs(ctx, active.ID); err != nil {
		return ListContext{}, err
	}
	return out, nil
}

func (s *Service) attachedIDs(ctx context.Context, projectID int64) ([]int64, error) {
	attachments, err := s.repo.ProjectAttachments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project attachments: %w", err)
	}
	ids := make([]int64, 0, len(attachments))
	for _, a := range attachments {
		ids = append(ids, a.PromptID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
