package stories

import (
	"time"

	"github.com/soapboxsocial/stories/pkg/users/types"
)

// Story represents a single ephemeral image posted by a user.
type Story struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	MediaURL  string    `json:"media_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Group is a roster entry: one per user with at least one visible story,
// represented by that user's most recent story.
type Group struct {
	ID            string    `json:"id"`
	UserID        int       `json:"user_id"`
	MediaURL      string    `json:"media_url"`
	CreatedAt     time.Time `json:"created_at"`
	DisplayName   string    `json:"display_name"`
	Username      string    `json:"username"`
	Image         string    `json:"image"`
	IsCurrentUser bool      `json:"is_current_user"`
}

// Viewer is a user who has seen a story.
type Viewer struct {
	types.User

	ViewedAt time.Time `json:"viewed_at"`
}

// ViewSummary lists who has seen a story, first viewer first.
type ViewSummary struct {
	Count   int       `json:"count"`
	Viewers []*Viewer `json:"viewers"`
}
