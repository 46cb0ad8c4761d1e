package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// PostingRecord is a stored job posting row. The full parsed posting lives
// in the payload column as JSON.
type PostingRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`

	Posting *types.JobPosting `json:"posting,omitempty"`
}

// SavePosting stores a parsed posting and returns its ID.
func (db *DB) SavePosting(ctx context.Context, userID uuid.UUID, posting *types.JobPosting) (uuid.UUID, error) {
	payload, err := json.Marshal(posting)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal posting: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO postings (user_id, url, title, company, payload)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, posting.URL, posting.Title, posting.Company, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save posting: %w", err)
	}
	return id, nil
}

// GetPosting retrieves a posting by ID, scoped to its owner. Returns nil
// when no row matches.
func (db *DB) GetPosting(ctx context.Context, userID, postingID uuid.UUID) (*PostingRecord, error) {
	var rec PostingRecord
	var payload []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, url, title, company, payload, created_at
		 FROM postings WHERE id = $1 AND user_id = $2`,
		postingID, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.URL, &rec.Title, &rec.Company, &payload, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}

	if len(payload) > 0 {
		var posting types.JobPosting
		if err := json.Unmarshal(payload, &posting); err != nil {
			return nil, fmt.Errorf("failed to unmarshal posting payload: %w", err)
		}
		rec.Posting = &posting
	}

	return &rec, nil
}

// PostingFilters holds optional filters for listing postings.
type PostingFilters struct {
	Company string
	Limit   int
}

// ListPostings retrieves a user's postings, newest first.
func (db *DB) ListPostings(ctx context.Context, userID uuid.UUID, filters PostingFilters) ([]PostingRecord, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, user_id, url, title, company, created_at
		FROM postings WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	var postings []PostingRecord
	for rows.Next() {
		var rec PostingRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.URL, &rec.Title, &rec.Company, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, rec)
	}
	return postings, nil
}

// DeletePosting deletes a posting and its analyses (via cascade).
func (db *DB) DeletePosting(ctx context.Context, userID, postingID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM postings WHERE id = $1 AND user_id = $2`, postingID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("posting not found: %s", postingID)
	}
	return nil
}
