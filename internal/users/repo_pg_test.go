package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	user := User{
		ID:           "user-1",
		FullName:     "Alice Smith",
		Email:        "alice@x.com",
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.FullName, user.Email, user.Username, user.PasswordHash, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err = repo.Create(context.Background(), User{ID: "user-1"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUsernameOrEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "full_name", "email", "username", "password_hash", "created_at"}).
		AddRow("user-1", "Alice Smith", "alice@x.com", "alice", "$2a$10$hash", created)
	mock.ExpectQuery("SELECT id, full_name, email, username, password_hash, created_at").
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.GetByUsernameOrEmail(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsernameOrEmail: %v", err)
	}
	if user.Email != "alice@x.com" || user.Username != "alice" {
		t.Fatalf("unexpected user %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, full_name, email, username, password_hash, created_at").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "username", "password_hash", "created_at"}))

	if _, err := repo.GetByID(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
