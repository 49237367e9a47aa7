package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanyang/promptdeck/internal/domain/event"
	domainproject "github.com/alanyang/promptdeck/internal/domain/project"
	portbus "github.com/alanyang/promptdeck/internal/port/eventbus"
	portproject "github.com/alanyang/promptdeck/internal/port/project"
)

// Service manages projects and the single active-project designation the
// prompt service consults.
type Service struct {
	repo portproject.Repository
	bus  portbus.EventBus
}

func NewService(repo portproject.Repository, bus portbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

// Active implements port/project.ActiveProvider.
func (s *Service) Active(ctx context.Context) (domainproject.Project, bool, error) {
	return s.repo.Active(ctx)
}

func (s *Service) Create(ctx context.Context, name string) (domainproject.Project, error) {
	p, err := s.repo.Create(ctx, name)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domainproject.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domainproject.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *Service) Activate(ctx context.Context, id int64) (domainproject.Project, error) {
	p, err := s.repo.SetActive(ctx, id)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("activate project: %w", err)
	}
	if err := s.bus.Publish(ctx, event.New(event.TypeProjectActivated, p.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish ProjectActivated event", "project_id", p.ID, "error", err)
	}
	return p, nil
}

// Delete removes the project. Prompts scoped to it are retained with their
// project binding nulled; attachments cascade away in storage.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
