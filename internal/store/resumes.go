package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeRecord is a stored resume: the document body as JSONB plus
// ownership and bookkeeping columns.
type ResumeRecord struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	Title     string                `json:"title"`
	Document  *types.ResumeDocument `json:"document"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// ResumeSummary is a lightweight view of a resume for listing.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FetchLatestOrByID retrieves one of the user's resumes: the record with
// resumeID when given, otherwise the most recently updated one. Returns
// nil when nothing matches.
func (s *Store) FetchLatestOrByID(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID) (*ResumeRecord, error) {
	query := `SELECT id, user_id, title, document, created_at, updated_at
		 FROM resumes WHERE user_id = $1`
	args := []any{userID}
	if resumeID != nil {
		query += ` AND id = $2`
		args = append(args, *resumeID)
	} else {
		query += ` ORDER BY updated_at DESC LIMIT 1`
	}

	var rec ResumeRecord
	var docBytes []byte
	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&rec.ID, &rec.UserID, &rec.Title, &docBytes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}

	// Stored documents may predate schema additions; the lenient decoder
	// fills in whatever is missing.
	rec.Document = types.DecodeDocument(docBytes)
	return &rec, nil
}

// Upsert inserts rec, or updates it in place when a row with its ID
// already exists for the same user. A nil ID gets one generated. The
// stored record is returned with its timestamps refreshed.
func (s *Store) Upsert(ctx context.Context, rec *ResumeRecord) (*ResumeRecord, error) {
	if rec.Document == nil {
		rec.Document = types.NewResumeDocument()
	}
	docBytes, err := json.Marshal(rec.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume document: %w", err)
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	out := *rec
	err = s.pool.QueryRow(ctx,
		`INSERT INTO resumes (id, user_id, title, document)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET title = EXCLUDED.title, document = EXCLUDED.document, updated_at = NOW()
		 WHERE resumes.user_id = EXCLUDED.user_id
		 RETURNING id, created_at, updated_at`,
		rec.ID, rec.UserID, rec.Title, docBytes,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("resume %s belongs to another user", rec.ID)
		}
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return &out, nil
}

// ListResumes retrieves summaries of the user's resumes, newest first.
func (s *Store) ListResumes(ctx context.Context, userID uuid.UUID) ([]ResumeSummary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, created_at, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []ResumeSummary
	for rows.Next() {
		var r ResumeSummary
		if err := rows.Scan(&r.ID, &r.Title, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

// DeleteResume removes one of the user's resumes.
func (s *Store) DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) error {
	result, err := s.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}
