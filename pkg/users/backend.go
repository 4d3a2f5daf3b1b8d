// Package users is the profile directory used to annotate stories with user details.
package users

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/soapboxsocial/stories/pkg/users/types"
)

type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{
		db: db,
	}
}

// ProfilesByID returns the profiles of the requested users keyed by ID. Unknown IDs are omitted.
func (b *Backend) ProfilesByID(ctx context.Context, ids []int) (map[int]*types.User, error) {
	result := make(map[int]*types.User)
	if len(ids) == 0 {
		return result, nil
	}

	stmt, err := b.db.PrepareContext(ctx, "SELECT id, display_name, username, image FROM users WHERE id = ANY($1);")
	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		user := &types.User{}

		err := rows.Scan(&user.ID, &user.DisplayName, &user.Username, &user.Image)
		if err != nil {
			return nil, err
		}

		result[user.ID] = user
	}

	return result, rows.Err()
}
