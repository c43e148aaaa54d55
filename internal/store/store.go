// Package store provides PostgreSQL persistence for saved and applied jobs.
// The pipeline core owns no state; the store is invoked by the HTTP layer
// after a pipeline run returns.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobscout/jobscout/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the saved_jobs table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS saved_jobs (
			id          UUID PRIMARY KEY,
			user_id     UUID NOT NULL,
			job_id      TEXT NOT NULL,
			posting     JSONB NOT NULL,
			applied     BOOLEAN NOT NULL DEFAULT FALSE,
			saved_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			applied_at  TIMESTAMPTZ,
			UNIQUE (user_id, job_id)
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SavedJob is a posting a user bookmarked, with its snapshot at save time.
type SavedJob struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	JobID     string           `json:"jobId"`
	Posting   types.ResultItem `json:"posting"`
	Applied   bool             `json:"applied"`
	SavedAt   time.Time        `json:"savedAt"`
	AppliedAt *time.Time       `json:"appliedAt,omitempty"`
}

// SaveJob bookmarks a posting for the user. Saving the same posting twice
// refreshes the snapshot but keeps the original record.
func (s *Store) SaveJob(ctx context.Context, userID uuid.UUID, item types.ResultItem) (*SavedJob, error) {
	posting, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal posting: %w", err)
	}

	var saved SavedJob
	err = s.pool.QueryRow(ctx,
		`INSERT INTO saved_jobs (id, user_id, job_id, posting)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, job_id) DO UPDATE SET posting = $4
		 RETURNING id, user_id, job_id, applied, saved_at, applied_at`,
		uuid.New(), userID, item.ID, posting,
	).Scan(&saved.ID, &saved.UserID, &saved.JobID, &saved.Applied, &saved.SavedAt, &saved.AppliedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	saved.Posting = item
	return &saved, nil
}

// DeleteJob removes a bookmark. Deleting an absent bookmark is not an error.
func (s *Store) DeleteJob(ctx context.Context, userID uuid.UUID, jobID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete saved job: %w", err)
	}
	return nil
}

// MarkApplied flags a saved posting as applied-to, bookmarking it first if
// needed.
func (s *Store) MarkApplied(ctx context.Context, userID uuid.UUID, item types.ResultItem) (*SavedJob, error) {
	posting, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal posting: %w", err)
	}

	var saved SavedJob
	err = s.pool.QueryRow(ctx,
		`INSERT INTO saved_jobs (id, user_id, job_id, posting, applied, applied_at)
		 VALUES ($1, $2, $3, $4, TRUE, NOW())
		 ON CONFLICT (user_id, job_id) DO UPDATE SET applied = TRUE, applied_at = NOW()
		 RETURNING id, user_id, job_id, applied, saved_at, applied_at`,
		uuid.New(), userID, item.ID, posting,
	).Scan(&saved.ID, &saved.UserID, &saved.JobID, &saved.Applied, &saved.SavedAt, &saved.AppliedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to mark job applied: %w", err)
	}
	saved.Posting = item
	return &saved, nil
}

// ListSaved returns the user's bookmarks, most recent first.
func (s *Store) ListSaved(ctx context.Context, userID uuid.UUID) ([]SavedJob, error) {
	return s.list(ctx,
		`SELECT id, user_id, job_id, posting, applied, saved_at, applied_at
		 FROM saved_jobs WHERE user_id = $1
		 ORDER BY saved_at DESC`,
		userID)
}

// ListApplied returns the user's applied-to postings, most recent first.
func (s *Store) ListApplied(ctx context.Context, userID uuid.UUID) ([]SavedJob, error) {
	return s.list(ctx,
		`SELECT id, user_id, job_id, posting, applied, saved_at, applied_at
		 FROM saved_jobs WHERE user_id = $1 AND applied
		 ORDER BY applied_at DESC`,
		userID)
}

func (s *Store) list(ctx context.Context, query string, userID uuid.UUID) ([]SavedJob, error) {
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	defer rows.Close()

	var jobs []SavedJob
	for rows.Next() {
		var saved SavedJob
		var posting []byte
		if err := rows.Scan(&saved.ID, &saved.UserID, &saved.JobID, &posting,
			&saved.Applied, &saved.SavedAt, &saved.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved job: %w", err)
		}
		if posting != nil {
			_ = json.Unmarshal(posting, &saved.Posting)
		}
		jobs = append(jobs, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved jobs: %w", err)
	}
	return jobs, nil
}

// GetSaved returns one bookmark, or nil when the user never saved that job.
func (s *Store) GetSaved(ctx context.Context, userID uuid.UUID, jobID string) (*SavedJob, error) {
	var saved SavedJob
	var posting []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, job_id, posting, applied, saved_at, applied_at
		 FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	).Scan(&saved.ID, &saved.UserID, &saved.JobID, &posting,
		&saved.Applied, &saved.SavedAt, &saved.AppliedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get saved job: %w", err)
	}
	if posting != nil {
		_ = json.Unmarshal(posting, &saved.Posting)
	}
	return &saved, nil
}
