package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PGRepo implements Repo using Postgres. Uniqueness is enforced by the
// users_email_key and users_username_key constraints; a violation maps to
// ErrDuplicate.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, full_name, email, username, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, full_name, email, username, password_hash, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (User, error) {
	const query = `
SELECT id, full_name, email, username, password_hash, created_at
FROM users
WHERE username = $1 OR email = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, identifier))
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}
