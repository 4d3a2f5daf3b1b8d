package stories

import "github.com/pkg/errors"

var (
	// ErrUnauthorized is returned when the caller has no resolvable identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a referenced story or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound narrows ErrNotFound to a missing user record.
	ErrUserNotFound = errors.WithMessage(ErrNotFound, "user")

	// ErrConflict is returned when a uniqueness guarded write could not settle.
	ErrConflict = errors.New("conflicting write")

	// ErrUnavailable is returned when the store or the media service cannot be reached.
	ErrUnavailable = errors.New("service unavailable")

	// ErrInvalid is returned for requests that can never succeed as sent.
	ErrInvalid = errors.New("invalid request")
)

// unavailable marks err as a store or media failure.
func unavailable(err error, msg string) error {
	return errors.Wrapf(ErrUnavailable, "%s: %v", msg, err)
}
