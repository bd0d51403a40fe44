package resumes

import "time"

// Resume is a submission owned by exactly one user. Ownership is set from
// the submitter's session at creation and never changes.
type Resume struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Summary   string    `json:"summary,omitempty"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}
