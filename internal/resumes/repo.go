package resumes

import "context"

// Repo defines persistence operations for resumes. Records are append-only
// in this scope: no update or delete.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	// ListByUser returns the user's resumes, newest first.
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
}
