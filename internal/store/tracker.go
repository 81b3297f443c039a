// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/meshintel/vaxlit/pkg/types"
)

// Tracker returns the progress row for source. A source with no row yet
// gets a zero row with StatusPending; the row is created on first upsert.
func (s *Store) Tracker(ctx context.Context, source string) (types.TrackerRow, error) {
	row := types.TrackerRow{SourceName: source, Status: types.StatusPending}

	var updatedAt sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT last_processed_id, status, updated_at FROM processing_tracker WHERE source_name = ?`,
		source,
	).Scan(&row.LastProcessedID, &row.Status, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return row, nil
	}
	if err != nil {
		return row, fmt.Errorf("reading tracker for %s: %w", source, err)
	}

	if updatedAt.Valid {
		if t, parseErr := time.Parse(time.RFC3339Nano, updatedAt.String); parseErr == nil {
			row.UpdatedAt = t
		}
	}
	return row, nil
}

// UpsertTracker writes the progress row for a source, creating it on first
// use. The write is a single-statement upsert, so concurrent orchestrators
// on different sources never interleave partial rows.
func (s *Store) UpsertTracker(ctx context.Context, row types.TrackerRow) error {
	updatedAt := row.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO processing_tracker (source_name, last_processed_id, status, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(source_name) DO UPDATE SET
			last_processed_id=excluded.last_processed_id,
			status=excluded.status,
			updated_at=excluded.updated_at`,
		row.SourceName, row.LastProcessedID, string(row.Status),
		updatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting tracker for %s: %w", row.SourceName, err)
	}
	return nil
}

// Trackers lists all progress rows, ordered by source name.
func (s *Store) Trackers(ctx context.Context) ([]types.TrackerRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source_name, last_processed_id, status, updated_at
		 FROM processing_tracker ORDER BY source_name`)
	if err != nil {
		return nil, fmt.Errorf("listing trackers: %w", err)
	}
	defer rows.Close()

	var out []types.TrackerRow
	for rows.Next() {
		var (
			row       types.TrackerRow
			updatedAt sql.NullString
		)
		if err := rows.Scan(&row.SourceName, &row.LastProcessedID, &row.Status, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning tracker: %w", err)
		}
		if updatedAt.Valid {
			if t, parseErr := time.Parse(time.RFC3339Nano, updatedAt.String); parseErr == nil {
				row.UpdatedAt = t
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
