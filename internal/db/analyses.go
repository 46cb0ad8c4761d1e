package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Analysis kinds stored in the analyses table.
const (
	AnalysisKindFit  = "fit"
	AnalysisKindDeep = "deep"
	AnalysisKindPlan = "plan"
)

// AnalysisRecord is a stored analysis result. Content is the serialized
// FitAnalysis, DeepAnalysis, or TailoringPlan depending on Kind; the engine
// defines the shapes and the database treats them as opaque JSON.
type AnalysisRecord struct {
	ID        uuid.UUID       `json:"id"`
	PostingID uuid.UUID       `json:"posting_id"`
	Kind      string          `json:"kind"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveAnalysis stores an analysis result for a posting and returns its ID.
// Re-analyzing a posting replaces the previous result of the same kind.
func (db *DB) SaveAnalysis(ctx context.Context, postingID uuid.UUID, kind string, content any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (posting_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (posting_id, kind) DO UPDATE SET content = $3, created_at = NOW()
		 RETURNING id`,
		postingID, kind, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save %s analysis: %w", kind, err)
	}
	return id, nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil when no row matches.
func (db *DB) GetAnalysis(ctx context.Context, analysisID uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, posting_id, kind, content, created_at
		 FROM analyses WHERE id = $1`,
		analysisID,
	).Scan(&rec.ID, &rec.PostingID, &rec.Kind, &rec.Content, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &rec, nil
}

// GetAnalysisByKind retrieves a posting's analysis of one kind. Returns nil
// when the posting has no analysis of that kind yet.
func (db *DB) GetAnalysisByKind(ctx context.Context, postingID uuid.UUID, kind string) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, posting_id, kind, content, created_at
		 FROM analyses WHERE posting_id = $1 AND kind = $2`,
		postingID, kind,
	).Scan(&rec.ID, &rec.PostingID, &rec.Kind, &rec.Content, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s analysis: %w", kind, err)
	}
	return &rec, nil
}
