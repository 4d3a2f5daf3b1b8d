// Package views is the append-once ledger of which viewer has seen which story.
package views

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// ErrUnknownUser is returned when the viewer has no user record.
var ErrUnknownUser = errors.New("unknown user")

const foreignKeyViolation = pq.ErrorCode("23503")

// View is a single fact that viewer has seen a story.
type View struct {
	StoryID   string
	ViewerID  int
	CreatedAt time.Time
}

type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// Record inserts the view unless one already exists for the pair. It reports whether a new view was written.
func (b *Backend) Record(ctx context.Context, story string, viewer int, at time.Time) (bool, error) {
	stmt, err := b.db.PrepareContext(
		ctx,
		"INSERT INTO story_views (story_id, viewer_id, created_at) VALUES ($1, $2, $3) ON CONFLICT (story_id, viewer_id) DO NOTHING;",
	)
	if err != nil {
		return false, err
	}

	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, story, viewer, at)
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == foreignKeyViolation {
		return false, ErrUnknownUser
	}

	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// GetViews returns the views of a story, first viewer first.
func (b *Backend) GetViews(ctx context.Context, story string) ([]*View, error) {
	stmt, err := b.db.PrepareContext(
		ctx,
		"SELECT story_id, viewer_id, created_at FROM story_views WHERE story_id = $1 ORDER BY created_at, viewer_id;",
	)
	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, story)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	result := make([]*View, 0)

	for rows.Next() {
		view := &View{}

		err := rows.Scan(&view.StoryID, &view.ViewerID, &view.CreatedAt)
		if err != nil {
			return nil, err
		}

		result = append(result, view)
	}

	return result, rows.Err()
}

// GetViewedStoryIDs returns the IDs of all stories viewer has seen.
func (b *Backend) GetViewedStoryIDs(ctx context.Context, viewer int) ([]string, error) {
	stmt, err := b.db.PrepareContext(ctx, "SELECT story_id FROM story_views WHERE viewer_id = $1 ORDER BY created_at;")
	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, viewer)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	result := make([]string, 0)

	for rows.Next() {
		var id string
		err := rows.Scan(&id)
		if err != nil {
			return nil, err
		}

		result = append(result, id)
	}

	return result, rows.Err()
}
