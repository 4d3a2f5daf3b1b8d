package http

import "context"

type key string

const userID key = "id"

// GetUserIDFromContext returns a user ID from a context
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userID).(int)
	if !ok || id == 0 {
		return 0, false
	}

	return id, true
}

// WithUserID stores a user ID in the context
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userID, id)
}
