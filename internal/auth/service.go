package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resume-screening-backend/internal/users"
)

// ErrInvalidCredentials is returned for both unknown identifiers and wrong
// passwords so responses carry no account-enumeration signal.
var ErrInvalidCredentials = errors.New("invalid username/email or password")

// Service contains the registration and login business logic.
type Service struct {
	Users users.Repo
}

func NewService(repo users.Repo) *Service {
	return &Service{Users: repo}
}

// RegisterInput carries the already-validated registration fields.
type RegisterInput struct {
	FullName string
	Email    string
	Username string
	Password string
}

// Register hashes the password and creates the user. Returns
// users.ErrDuplicate when the email or username is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (users.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return users.User{}, err
	}

	user := users.User{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return users.User{}, err
	}
	return user, nil
}

// Login resolves the identifier against username and email and verifies the
// password against the stored bcrypt hash.
func (s *Service) Login(ctx context.Context, identifier, password string) (users.User, error) {
	user, err := s.Users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return users.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser loads the identity behind an authenticated session. Returns
// users.ErrNotFound when the session references a user that no longer exists.
func (s *Service) CurrentUser(ctx context.Context, userID string) (users.User, error) {
	return s.Users.GetByID(ctx, userID)
}
