// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists publication records and per-source tagging
// progress in SQLite. Tag columns are added to the records table at
// runtime: the tagger emits keys derived from vocabulary leaves, and
// vocabularies grow.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meshintel/vaxlit/pkg/types"
)

const recordsTable = "records"

// Store manages the vaxlit SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			primary_id INTEGER PRIMARY KEY AUTOINCREMENT,
			doi TEXT NOT NULL,
			doi_link TEXT,
			source TEXT NOT NULL,
			title TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_source ON records(source, primary_id)`,
		`CREATE TABLE IF NOT EXISTS processing_tracker (
			source_name TEXT PRIMARY KEY,
			last_processed_id INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			updated_at TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// InsertRecords adds publication records to the base table, assigning
// ascending primary IDs.
func (s *Store) InsertRecords(ctx context.Context, records []types.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (doi, doi_link, source, title) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.DOI, r.DOILink, r.Source, r.Title); err != nil {
			return fmt.Errorf("inserting record %q: %w", r.DOI, err)
		}
	}
	return tx.Commit()
}

// NextBatch returns up to limit records for source with primary_id greater
// than afterID, in ascending primary_id order. where optionally restricts
// the selection with an extra SQL condition (the operator-supplied
// selection query).
func (s *Store) NextBatch(ctx context.Context, source string, afterID int64, limit int, where string) ([]types.Record, error) {
	query := `SELECT primary_id, doi, COALESCE(doi_link, ''), source, COALESCE(title, '')
		FROM records WHERE source = ? AND primary_id > ?`
	if strings.TrimSpace(where) != "" {
		query += " AND (" + where + ")"
	}
	query += " ORDER BY primary_id ASC LIMIT ?"

	rows, err := s.db.QueryContext(ctx, query, source, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying batch: %w", err)
	}
	defer rows.Close()

	var out []types.Record
	for rows.Next() {
		var r types.Record
		if err := rows.Scan(&r.PrimaryID, &r.DOI, &r.DOILink, &r.Source, &r.Title); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// columnNameRe is the post-sanitization shape every dynamic column must
// have before it is interpolated into DDL or UPDATE statements.
var columnNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// SanitizeColumn converts a tag-map key to a storable column name:
// "#" separators become "__hash__".
func SanitizeColumn(key string) string {
	return strings.ReplaceAll(key, "#", "__hash__")
}

// sqlType infers the column type for a value. Precedence: integer, float,
// boolean, datetime, else text.
func sqlType(v any) string {
	switch v.(type) {
	case int, int32, int64:
		return "INTEGER"
	case float32, float64:
		return "REAL"
	case bool:
		return "BOOLEAN"
	case time.Time:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

// existingColumns reads the current records schema.
func existingColumns(ctx context.Context, tx *sql.Tx) (map[string]bool, error) {
	rows, err := tx.QueryContext(ctx, `PRAGMA table_info(`+recordsTable+`)`)
	if err != nil {
		return nil, fmt.Errorf("reading table info: %w", err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dflt       sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &primaryKey); err != nil {
			return nil, fmt.Errorf("scanning table info: %w", err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// ensureColumns adds any missing columns to the records table, inferring
// each type from a sample value.
func ensureColumns(ctx context.Context, tx *sql.Tx, samples map[string]any) error {
	existing, err := existingColumns(ctx, tx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if existing[name] {
			continue
		}
		if !columnNameRe.MatchString(name) {
			return fmt.Errorf("invalid column name %q", name)
		}
		ddl := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN "%s" %s`, recordsTable, name, sqlType(samples[name]))
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("adding column %s: %w", name, err)
		}
	}
	return nil
}

// UpdateRecordTags writes flattened tag values back to the base table in
// one transaction, creating missing columns first. Keys are tag-map keys;
// they are sanitized here. On any failure the whole batch rolls back.
func (s *Store) UpdateRecordTags(ctx context.Context, rows map[int64]map[string]any) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Sanitize keys up front; work with column names from here on.
	clean := make(map[int64]map[string]any, len(rows))
	samples := make(map[string]any)
	for id, vals := range rows {
		cv := make(map[string]any, len(vals))
		for key, v := range vals {
			col := SanitizeColumn(key)
			cv[col] = v
			samples[col] = v
		}
		clean[id] = cv
	}
	if err := ensureColumns(ctx, tx, samples); err != nil {
		return err
	}

	ids := make([]int64, 0, len(clean))
	for id := range clean {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		vals := clean[id]
		cols := make([]string, 0, len(vals))
		for col := range vals {
			cols = append(cols, col)
		}
		sort.Strings(cols)

		var (
			sets []string
			args []any
		)
		for _, col := range cols {
			if !columnNameRe.MatchString(col) {
				return fmt.Errorf("invalid column name %q", col)
			}
			sets = append(sets, fmt.Sprintf(`"%s" = ?`, col))
			args = append(args, vals[col])
		}
		args = append(args, id)

		query := fmt.Sprintf(`UPDATE %s SET %s WHERE primary_id = ?`,
			recordsTable, strings.Join(sets, ", "))
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("updating record %d: %w", id, err)
		}
	}

	return tx.Commit()
}
