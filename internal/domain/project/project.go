package project

import "time"

// Project is the unit of scoping for project and blueprint prompts. At most
// one project is active at a time; the active one provides the context for
// attachment toggles and blueprint upserts.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
