// Package mutes is the per viewer registry of story owners whose stories the viewer does not want to see.
package mutes

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// ErrContended is returned when a toggle kept racing with concurrent toggles of the same pair.
var ErrContended = errors.New("mute toggle contended")

// ErrUnknownUser is returned when the muted owner has no user record.
var ErrUnknownUser = errors.New("unknown user")

const maxToggleAttempts = 3

const foreignKeyViolation = pq.ErrorCode("23503")

type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// Toggle flips the mute of owner for viewer and returns whether owner is now muted.
//
// Each attempt either deletes an existing row or inserts a missing one. When neither happens a
// concurrent toggle committed in between, so the attempt is repeated against the new state.
func (b *Backend) Toggle(ctx context.Context, viewer, owner int) (bool, error) {
	for i := 0; i < maxToggleAttempts; i++ {
		removed, err := b.exec(ctx, "DELETE FROM story_mutes WHERE user_id = $1 AND muted = $2;", viewer, owner)
		if err != nil {
			return false, errors.Wrap(err, "failed to delete mute")
		}

		if removed {
			return false, nil
		}

		inserted, err := b.exec(
			ctx,
			"INSERT INTO story_mutes (user_id, muted) VALUES ($1, $2) ON CONFLICT (user_id, muted) DO NOTHING;",
			viewer, owner,
		)
		if isForeignKeyViolation(err) {
			return false, ErrUnknownUser
		}

		if err != nil {
			return false, errors.Wrap(err, "failed to insert mute")
		}

		if inserted {
			return true, nil
		}
	}

	return false, ErrContended
}

// IsMuted returns whether viewer muted owner.
func (b *Backend) IsMuted(ctx context.Context, viewer, owner int) (bool, error) {
	stmt, err := b.db.PrepareContext(ctx, "SELECT EXISTS (SELECT 1 FROM story_mutes WHERE user_id = $1 AND muted = $2);")
	if err != nil {
		return false, err
	}

	defer stmt.Close()

	var muted bool
	err = stmt.QueryRowContext(ctx, viewer, owner).Scan(&muted)
	return muted, err
}

// GetMutedBy returns the owners viewer has muted.
func (b *Backend) GetMutedBy(ctx context.Context, viewer int) ([]int, error) {
	stmt, err := b.db.PrepareContext(ctx, "SELECT muted FROM story_mutes WHERE user_id = $1 ORDER BY created_at;")
	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, viewer)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	result := make([]int, 0)

	for rows.Next() {
		var muted int
		err := rows.Scan(&muted)
		if err != nil {
			return nil, err
		}

		result = append(result, muted)
	}

	return result, rows.Err()
}

func (b *Backend) exec(ctx context.Context, query string, args ...interface{}) (bool, error) {
	stmt, err := b.db.PrepareContext(ctx, query)
	if err != nil {
		return false, err
	}

	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func isForeignKeyViolation(err error) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && perr.Code == foreignKeyViolation
}
