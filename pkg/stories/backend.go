package stories

import (
	"context"
	"database/sql"
	"time"
)

// Backend is the story record store.
type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) AddStory(ctx context.Context, story *Story) error {
	stmt, err := b.db.PrepareContext(ctx, "INSERT INTO stories (id, user_id, media, created_at) VALUES ($1, $2, $3, $4);")
	if err != nil {
		return err
	}

	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, story.ID, story.UserID, story.MediaURL, story.CreatedAt)
	return err
}

// GetStory returns a story regardless of its age, sql.ErrNoRows when it does not exist.
func (b *Backend) GetStory(ctx context.Context, id string) (*Story, error) {
	stmt, err := b.db.PrepareContext(ctx, "SELECT id, user_id, media, created_at FROM stories WHERE id = $1;")
	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	story := &Story{}
	err = stmt.QueryRowContext(ctx, id).Scan(&story.ID, &story.UserID, &story.MediaURL, &story.CreatedAt)
	if err != nil {
		return nil, err
	}

	return story, nil
}

// GetActiveStories returns every story created at or after since.
func (b *Backend) GetActiveStories(ctx context.Context, since time.Time) ([]*Story, error) {
	return b.query(
		ctx,
		"SELECT id, user_id, media, created_at FROM stories WHERE created_at >= $1;",
		since,
	)
}

// GetStoriesForUser returns the stories of user created at or after since, oldest first.
func (b *Backend) GetStoriesForUser(ctx context.Context, user int, since time.Time) ([]*Story, error) {
	return b.query(
		ctx,
		"SELECT id, user_id, media, created_at FROM stories WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at, id;",
		user, since,
	)
}

// DeleteStory removes a story owned by user and returns it, sql.ErrNoRows when user owns no such story.
func (b *Backend) DeleteStory(ctx context.Context, id string, user int) (*Story, error) {
	stmt, err := b.db.PrepareContext(ctx, "DELETE FROM stories WHERE id = $1 AND user_id = $2 RETURNING id, user_id, media, created_at;")
	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	story := &Story{}
	err = stmt.QueryRowContext(ctx, id, user).Scan(&story.ID, &story.UserID, &story.MediaURL, &story.CreatedAt)
	if err != nil {
		return nil, err
	}

	return story, nil
}

// DeleteExpired deletes all stories created before the given time and returns them.
func (b *Backend) DeleteExpired(ctx context.Context, before time.Time) ([]*Story, error) {
	return b.query(
		ctx,
		"DELETE FROM stories WHERE created_at < $1 RETURNING id, user_id, media, created_at;",
		before,
	)
}

func (b *Backend) query(ctx context.Context, query string, args ...interface{}) ([]*Story, error) {
	stmt, err := b.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	result := make([]*Story, 0)

	for rows.Next() {
		story := &Story{}

		err := rows.Scan(&story.ID, &story.UserID, &story.MediaURL, &story.CreatedAt)
		if err != nil {
			return nil, err
		}

		result = append(result, story)
	}

	return result, rows.Err()
}
