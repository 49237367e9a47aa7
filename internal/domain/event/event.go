package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypePromptCreated     Type = "prompt_created"
	TypePromptUpdated     Type = "prompt_updated"
	TypePromptDeleted     Type = "prompt_deleted"
	TypeAttachmentToggled Type = "attachment_toggled"
	TypeBlueprintUpserted Type = "blueprint_prompt_upserted"
	TypeBlueprintDeleted  Type = "blueprint_prompt_deleted"
	TypeBlueprintsChanged Type = "blueprints_changed"
	TypeProjectActivated  Type = "project_activated"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelPrompt    Channel = "prompt"
	ChannelBlueprint Channel = "blueprint"
	ChannelProject   Channel = "project"
)

var typeToChannel = map[Type]Channel{
	TypePromptCreated:     ChannelPrompt,
	TypePromptUpdated:     ChannelPrompt,
	TypePromptDeleted:     ChannelPrompt,
	TypeAttachmentToggled: ChannelPrompt,
	TypeBlueprintUpserted: ChannelBlueprint,
	TypeBlueprintDeleted:  ChannelBlueprint,
	TypeBlueprintsChanged: ChannelBlueprint,
	TypeProjectActivated:  ChannelProject,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state. Subscribers fetch fresh
// state through the page service. EntityID is the prompt or project id; it
// is zero for catalog-level events such as blueprints_changed.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Type      Type      `json:"type"`
	EntityID  int64     `json:"entity_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID int64) Event {
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
