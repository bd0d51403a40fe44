package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput marks a submission missing its required fields.
var ErrInvalidInput = errors.New("name and email are required")

// Service contains business logic for resume submissions.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput is a raw submission; Skills is the free-text comma-separated
// form field.
type CreateInput struct {
	Name    string
	Email   string
	Summary string
	Skills  string
}

// Create persists a resume owned by userID.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (Resume, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" {
		return Resume{}, ErrInvalidInput
	}

	resume := Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      input.Name,
		Email:     input.Email,
		Summary:   strings.TrimSpace(input.Summary),
		Skills:    SplitSkills(input.Skills),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}
