package prompt

import "time"

// Type is the semantic category of a prompt.
type Type string

const (
	TypeSystem    Type = "SYSTEM"
	TypeGlobal    Type = "GLOBAL"
	TypeProject   Type = "PROJECT"
	TypeBlueprint Type = "BLUEPRINT"
)

// Writable reports whether the type can be assigned through the service.
// SYSTEM is reserved for seeded prompts and never accepted from requests.
func (t Type) Writable() bool {
	return t == TypeGlobal || t == TypeProject || t == TypeBlueprint
}

// Prompt is a named, persisted body of text usable as an input fragment to
// an LLM conversation.
//
// ProjectID is nil for GLOBAL prompts and set for PROJECT and BLUEPRINT
// prompts. SourcePath is set only on BLUEPRINT prompts and records the
// blueprint identifier the content was generated from. A prompt whose
// project was deleted keeps its row with ProjectID nulled; such tombstones
// stay readable but are never matched by blueprint lookups.
type Prompt struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       Type      `json:"type"`
	Content    string    `json:"content"`
	SourcePath *string   `json:"source_path,omitempty"`
	ProjectID  *int64    `json:"project_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Attachment marks a prompt as currently active within a project's context.
// It is the unit toggled by the user and never mutates the prompt itself.
type Attachment struct {
	ProjectID int64 `json:"project_id"`
	PromptID  int64 `json:"prompt_id"`
}

// Patch is a partial update. Nil fields are preserved. Type and ProjectID
// are immutable through the update path.
type Patch struct {
	Name       *string `json:"name,omitempty"`
	Content    *string `json:"content,omitempty"`
	SourcePath *string `json:"source_path,omitempty"`
}

// BlueprintName is the synthetic name given to a project's blueprint prompt.
func BlueprintName(projectName string) string {
	return "Blueprint: " + projectName
}
