package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres. Skills are stored as a jsonb array
// to preserve their order exactly as submitted.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	skills, err := marshalSkills(resume.Skills)
	if err != nil {
		return err
	}

	var summary sql.NullString
	if resume.Summary != "" {
		summary = sql.NullString{String: resume.Summary, Valid: true}
	}

	const query = `
INSERT INTO resumes (id, user_id, name, email, summary, skills, created_at)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)`
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Name,
		resume.Email,
		summary,
		skills,
		resume.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, name, email, summary, skills, created_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var resume Resume
		var summary sql.NullString
		var skills []byte
		err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.Name,
			&resume.Email,
			&summary,
			&skills,
			&resume.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if summary.Valid {
			resume.Summary = summary.String
		}
		resume.Skills, err = unmarshalSkills(skills)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

func marshalSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("marshal skills: %w", err)
	}
	return string(data), nil
}

func unmarshalSkills(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills, nil
}
