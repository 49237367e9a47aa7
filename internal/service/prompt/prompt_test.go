package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/promptdeck/internal/domain/event"
	domainproject "github.com/alanyang/promptdeck/internal/domain/project"
	domainprompt "github.com/alanyang/promptdeck/internal/domain/prompt"
	"github.com/alanyang/promptdeck/internal/mocks"
	promptsvc "github.com/alanyang/promptdeck/internal/service/prompt"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type promptDeps struct {
	repo       *mocks.MockPromptRepository
	projects   *mocks.MockActiveProvider
	blueprints *mocks.MockBlueprintSource
	bus        *mocks.MockEventBus
}

func newPromptSvc(t *testing.T) (*promptsvc.Service, promptDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := promptDeps{
		repo:       mocks.NewMockPromptRepository(ctrl),
		projects:   mocks.NewMockActiveProvider(ctrl),
		blueprints: mocks.NewMockBlueprintSource(ctrl),
		bus:        mocks.NewMockEventBus(ctrl),
	}
	svc := promptsvc.NewService(d.repo, d.projects, d.blueprints, d.bus)
	return svc, d
}

func matchEventType(et event.Type) gomock.Matcher {
	return eventTypeMatcher{et}
}

type eventTypeMatcher struct{ want event.Type }

func (m eventTypeMatcher) Matches(x interface{}) bool {
	e, ok := x.(event.Event)
	return ok && e.Type == m.want
}
func (m eventTypeMatcher) String() string { return "event.Type=" + string(m.want) }

func activeProject(id int64, name string) domainproject.Project {
	return domainproject.Project{ID: id, Name: name, IsActive: true}
}

// ── CreateGlobal ──────────────────────────────────────────────────────────────

func TestCreateGlobal(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d promptDeps) domainprompt.Prompt
		wantErr bool
		wantMsg string
	}{
		{
			name: "success creates GLOBAL prompt without project binding",
			setup: func(d promptDeps) domainprompt.Prompt {
				expected := domainprompt.Prompt{ID: 1, Name: "style", Type: domainprompt.TypeGlobal, Content: "be terse"}
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p domainprompt.Prompt) (domainprompt.Prompt, error) {
						assert.Equal(t, domainprompt.TypeGlobal, p.Type)
						assert.Nil(t, p.ProjectID)
						return expected, nil
					})
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypePromptCreated)).Return(nil)
				return expected
			},
		},
		{
			name: "duplicate name",
			setup: func(d promptDeps) domainprompt.Prompt {
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domainprompt.Prompt{}, &domainprompt.AlreadyExistsError{Name: "style"})
				return domainprompt.Prompt{}
			},
			wantErr: true,
			wantMsg: "already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPromptSvc(t)
			expected := tt.setup(d)

			got, err := svc.CreateGlobal(context.Background(), promptsvc.CreateInput{Name: "style", Content: "be terse"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expected.ID, got.ID)
			assert.Equal(t, domainprompt.TypeGlobal, got.Type)
		})
	}
}

// ── CreateProject ─────────────────────────────────────────────────────────────

func TestCreateProject(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d promptDeps) domainprompt.Prompt
		wantErr bool
		wantMsg string
	}{
		{
			name: "success binds prompt to the active project",
			setup: func(d promptDeps) domainprompt.Prompt {
				active := activeProject(7, "acme")
				expected := domainprompt.Prompt{ID: 2, Name: "conventions", Type: domainprompt.TypeProject, ProjectID: &active.ID}
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p domainprompt.Prompt) (domainprompt.Prompt, error) {
						assert.Equal(t, domainprompt.TypeProject, p.Type)
						require.NotNil(t, p.ProjectID)
						assert.Equal(t, int64(7), *p.ProjectID)
						return expected, nil
					})
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypePromptCreated)).Return(nil)
				return expected
			},
		},
		{
			name: "no active project returns the exact user-facing message",
			setup: func(d promptDeps) domainprompt.Prompt {
				d.projects.EXPECT().Active(gomock.Any()).Return(domainproject.Project{}, false, nil)
				return domainprompt.Prompt{}
			},
			wantErr: true,
			wantMsg: "An active project is required to create a project prompt.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPromptSvc(t)
			expected := tt.setup(d)

			got, err := svc.CreateProject(context.Background(), promptsvc.CreateInput{Name: "conventions", Content: "use tabs"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.ErrorIs(t, err, domainprompt.ErrActiveProjectRequired)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expected.ID, got.ID)
		})
	}
}

// ── Get / Update / Delete ─────────────────────────────────────────────────────

func TestGet_NotFoundMessageCarriesID(t *testing.T) {
	svc, d := newPromptSvc(t)
	d.repo.EXPECT().Get(gomock.Any(), int64(99)).Return(domainprompt.Prompt{}, &domainprompt.NotFoundError{ID: 99})

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "Prompt with id 99 not found.", err.Error())
	assert.ErrorIs(t, err, domainprompt.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d promptDeps)
		wantErr bool
	}{
		{
			name: "success publishes updated event",
			setup: func(d promptDeps) {
				name := "renamed"
				d.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(domainprompt.Prompt{ID: 5}, nil)
				d.repo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
					Return(domainprompt.Prompt{ID: 5, Name: name}, nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypePromptUpdated)).Return(nil)
			},
		},
		{
			name: "missing prompt fails before the write",
			setup: func(d promptDeps) {
				d.repo.EXPECT().Get(gomock.Any(), int64(5)).Return(domainprompt.Prompt{}, &domainprompt.NotFoundError{ID: 5})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPromptSvc(t)
			tt.setup(d)

			name := "renamed"
			_, err := svc.Update(context.Background(), 5, domainprompt.Patch{Name: &name})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainprompt.ErrNotFound)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d promptDeps)
		wantErr bool
	}{
		{
			name: "success publishes deleted event",
			setup: func(d promptDeps) {
				d.repo.EXPECT().Get(gomock.Any(), int64(3)).Return(domainprompt.Prompt{ID: 3}, nil)
				d.repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypePromptDeleted)).Return(nil)
			},
		},
		{
			name: "missing prompt surfaces not-found",
			setup: func(d promptDeps) {
				d.repo.EXPECT().Get(gomock.Any(), int64(3)).Return(domainprompt.Prompt{}, &domainprompt.NotFoundError{ID: 3})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPromptSvc(t)
			tt.setup(d)

			err := svc.Delete(context.Background(), 3)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainprompt.ErrNotFound)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ── UpsertBlueprint ───────────────────────────────────────────────────────────

func TestUpsertBlueprint(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(d promptDeps)
		wantCreated bool
		wantErr     bool
		wantMsg     string
	}{
		{
			name: "no existing blueprint creates one named after the project",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().FindProjectBlueprint(gomock.Any(), int64(7)).
					Return(domainprompt.Prompt{}, &domainprompt.BlueprintNotFoundError{})
				d.blueprints.EXPECT().Content(gomock.Any(), "fastapi").Return("<blueprint/>", nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p domainprompt.Prompt) (domainprompt.Prompt, error) {
						assert.Equal(t, "Blueprint: acme", p.Name)
						assert.Equal(t, domainprompt.TypeBlueprint, p.Type)
						require.NotNil(t, p.SourcePath)
						assert.Equal(t, "fastapi", *p.SourcePath)
						p.ID = 10
						return p, nil
					})
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeBlueprintUpserted)).Return(nil)
			},
			wantCreated: true,
		},
		{
			name: "existing blueprint is updated in place, id preserved",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				existing := domainprompt.Prompt{ID: 10, Name: "Blueprint: acme", Type: domainprompt.TypeBlueprint}
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().FindProjectBlueprint(gomock.Any(), int64(7)).Return(existing, nil)
				d.blueprints.EXPECT().Content(gomock.Any(), "fastapi").Return("<blueprint v2/>", nil)
				d.repo.EXPECT().Update(gomock.Any(), int64(10), gomock.Any()).
					DoAndReturn(func(_ context.Context, id int64, patch domainprompt.Patch) (domainprompt.Prompt, error) {
						require.NotNil(t, patch.Content)
						assert.Equal(t, "<blueprint v2/>", *patch.Content)
						return domainprompt.Prompt{ID: 10, Name: *patch.Name, Type: domainprompt.TypeBlueprint, Content: *patch.Content}, nil
					})
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeBlueprintUpserted)).Return(nil)
			},
			wantCreated: false,
		},
		{
			name: "no active project",
			setup: func(d promptDeps) {
				d.projects.EXPECT().Active(gomock.Any()).Return(domainproject.Project{}, false, nil)
			},
			wantErr: true,
			wantMsg: "An active project is required to create a blueprint prompt.",
		},
		{
			name: "content generation failure propagates",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().FindProjectBlueprint(gomock.Any(), int64(7)).
					Return(domainprompt.Prompt{}, &domainprompt.BlueprintNotFoundError{})
				d.blueprints.EXPECT().Content(gomock.Any(), "fastapi").Return("", errors.New("no such blueprint"))
			},
			wantErr: true,
			wantMsg: "generating blueprint content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPromptSvc(t)
			tt.setup(d)

			got, created, err := svc.UpsertBlueprint(context.Background(), "fastapi")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			assert.Equal(t, int64(10), got.ID)
		})
	}
}

// ── DeleteBlueprint ───────────────────────────────────────────────────────────

func TestDeleteBlueprint(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d promptDeps)
		wantErr bool
		wantMsg string
	}{
		{
			name: "success deletes and publishes",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().FindProjectBlueprint(gomock.Any(), int64(7)).
					Return(domainprompt.Prompt{ID: 10, Type: domainprompt.TypeBlueprint}, nil)
				d.repo.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeBlueprintDeleted)).Return(nil)
			},
		},
		{
			name: "absent blueprint reports the exact message",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().FindProjectBlueprint(gomock.Any(), int64(7)).
					Return(domainprompt.Prompt{}, &domainprompt.BlueprintNotFoundError{})
			},
			wantErr: true,
			wantMsg: "Blueprint prompt not found for the active project.",
		},
		{
			name: "no active project",
			setup: func(d promptDeps) {
				d.projects.EXPECT().Active(gomock.Any()).Return(domainproject.Project{}, false, nil)
			},
			wantErr: true,
			wantMsg: "An active project is required to delete a blueprint prompt.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPromptSvc(t)
			tt.setup(d)

			err := svc.DeleteBlueprint(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

// ── ToggleAttachment ──────────────────────────────────────────────────────────

func TestToggleAttachment(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(d promptDeps)
		wantAttached bool
		wantErr      bool
		wantMsg      string
	}{
		{
			name: "unattached prompt gets attached",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().Get(gomock.Any(), int64(1)).Return(domainprompt.Prompt{ID: 1, Type: domainprompt.TypeGlobal}, nil)
				d.repo.EXPECT().FindAttachment(gomock.Any(), int64(1), int64(7)).
					Return(domainprompt.Attachment{}, &domainprompt.NotFoundError{ID: 1})
				d.repo.EXPECT().Attach(gomock.Any(), int64(1), int64(7)).
					Return(domainprompt.Attachment{PromptID: 1, ProjectID: 7}, nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeAttachmentToggled)).Return(nil)
			},
			wantAttached: true,
		},
		{
			name: "attached prompt gets detached",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				a := domainprompt.Attachment{PromptID: 1, ProjectID: 7}
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().Get(gomock.Any(), int64(1)).Return(domainprompt.Prompt{ID: 1, Type: domainprompt.TypeGlobal}, nil)
				d.repo.EXPECT().FindAttachment(gomock.Any(), int64(1), int64(7)).Return(a, nil)
				d.repo.EXPECT().Detach(gomock.Any(), a).Return(nil)
				d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeAttachmentToggled)).Return(nil)
			},
			wantAttached: false,
		},
		{
			name: "missing prompt",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().Get(gomock.Any(), int64(1)).Return(domainprompt.Prompt{}, &domainprompt.NotFoundError{ID: 1})
			},
			wantErr: true,
			wantMsg: "Prompt with id 1 not found.",
		},
		{
			name: "no active project",
			setup: func(d promptDeps) {
				d.projects.EXPECT().Active(gomock.Any()).Return(domainproject.Project{}, false, nil)
			},
			wantErr: true,
			wantMsg: "An active project is required to attach or detach prompts.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPromptSvc(t)
			tt.setup(d)

			_, attached, err := svc.ToggleAttachment(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAttached, attached)
		})
	}
}

// Two toggles in a row return to the original state.
func TestToggleAttachment_TwoCycleRoundTrip(t *testing.T) {
	svc, d := newPromptSvc(t)
	active := activeProject(7, "acme")
	a := domainprompt.Attachment{PromptID: 1, ProjectID: 7}

	d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil).Times(2)
	d.repo.EXPECT().Get(gomock.Any(), int64(1)).Return(domainprompt.Prompt{ID: 1, Type: domainprompt.TypeGlobal}, nil).Times(2)
	gomock.InOrder(
		d.repo.EXPECT().FindAttachment(gomock.Any(), int64(1), int64(7)).
			Return(domainprompt.Attachment{}, &domainprompt.NotFoundError{ID: 1}),
		d.repo.EXPECT().Attach(gomock.Any(), int64(1), int64(7)).Return(a, nil),
		d.repo.EXPECT().FindAttachment(gomock.Any(), int64(1), int64(7)).Return(a, nil),
		d.repo.EXPECT().Detach(gomock.Any(), a).Return(nil),
	)
	d.bus.EXPECT().Publish(gomock.Any(), matchEventType(event.TypeAttachmentToggled)).Return(nil).Times(2)

	_, attached, err := svc.ToggleAttachment(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, attached)

	_, attached, err = svc.ToggleAttachment(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, attached)
}

// ── BlueprintPrompt ───────────────────────────────────────────────────────────

func TestBlueprintPrompt(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(d promptDeps)
		wantOK bool
	}{
		{
			name: "active project with blueprint",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().FindProjectBlueprint(gomock.Any(), int64(7)).
					Return(domainprompt.Prompt{ID: 10, Type: domainprompt.TypeBlueprint}, nil)
			},
			wantOK: true,
		},
		{
			name: "no active project yields ok=false, not an error",
			setup: func(d promptDeps) {
				d.projects.EXPECT().Active(gomock.Any()).Return(domainproject.Project{}, false, nil)
			},
		},
		{
			name: "active project without blueprint yields ok=false",
			setup: func(d promptDeps) {
				active := activeProject(7, "acme")
				d.projects.EXPECT().Active(gomock.Any()).Return(active, true, nil)
				d.repo.EXPECT().FindProjectBlueprint(gomock.Any(), int64(7)).
					Return(domainprompt.Prompt{}, &domainprompt.BlueprintNotFoundError{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPromptSvc(t)
			tt.setup(d)

			_, ok, err := svc.BlueprintPrompt(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

// ── event publish failures never fail the operation ───────────────────────────

func TestPublishFailureIsSwallowed(t *testing.T) {
	svc, d := newPromptSvc(t)
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(domainprompt.Prompt{ID: 1, Type: domainprompt.TypeGlobal}, nil)
	d.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("listen/notify down"))

	got, err := svc.CreateGlobal(context.Background(), promptsvc.CreateInput{Name: "style", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}
