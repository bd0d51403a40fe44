package users

import "context"

var (
	ErrNotFound  = errNotFound{}
	ErrDuplicate = errDuplicate{}
)

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

type errDuplicate struct{}

func (errDuplicate) Error() string { return "email or username already in use" }

// Repo defines persistence operations for user accounts. Users are created
// once and never mutated or deleted.
type Repo interface {
	// Create inserts a new user. Returns ErrDuplicate when the email or
	// username is already taken.
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	// GetByUsernameOrEmail matches the login identifier against both the
	// username and email columns.
	GetByUsernameOrEmail(ctx context.Context, identifier string) (User, error)
}
