// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch orchestrates per-source tagging runs: it pages through
// publication records, fetches each document, tags it, and persists the
// results with resumable progress tracking. One orchestrator per source;
// distinct sources may run concurrently because they touch disjoint
// tracker rows.
package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/meshintel/vaxlit/internal/fetch"
	"github.com/meshintel/vaxlit/internal/store"
	"github.com/meshintel/vaxlit/internal/tagger"
	"github.com/meshintel/vaxlit/pkg/types"
)

const defaultBatchSize = 50

// Orchestrator runs the tagging loop for one source.
type Orchestrator struct {
	Store     *store.Store
	Source    fetch.Source
	Engine    *tagger.Engine
	BatchSize int
}

// Summary holds the outcome of one orchestrator run.
type Summary struct {
	Tagged  int
	Skipped int
	Batches int
}

// Total returns the number of records processed.
func (s Summary) Total() int {
	return s.Tagged + s.Skipped
}

// HasFailures reports whether any records were skipped.
func (s Summary) HasFailures() bool {
	return s.Skipped > 0
}

// csvRow pairs a record with its flattened tags for the run's CSV export.
type csvRow struct {
	record types.Record
	tags   map[string]any
}

// Run processes every unprocessed record for sourceName, resuming from the
// tracker's last processed ID. where optionally restricts the selection.
// Per-record fetch or tag failures are logged and skipped; the tracker
// still advances past them. A persistence failure stops the run with the
// tracker unchanged, so a restart reprocesses the failed batch.
// Cancellation is honored between batches; a cancelled run leaves the
// tracker at the last completed batch.
func (o *Orchestrator) Run(ctx context.Context, sourceName, where, csvPath string, w io.Writer) (Summary, error) {
	batchSize := o.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var (
		summary Summary
		rowsOut []csvRow
	)

	for {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		tr, err := o.Store.Tracker(ctx, sourceName)
		if err != nil {
			return summary, err
		}

		records, err := o.Store.NextBatch(ctx, sourceName, tr.LastProcessedID, batchSize, where)
		if err != nil {
			return summary, err
		}

		if len(records) == 0 {
			tr.Status = types.StatusCompleted
			tr.UpdatedAt = time.Now().UTC()
			if err := o.Store.UpsertTracker(ctx, tr); err != nil {
				return summary, err
			}
			break
		}

		buffer := make(map[int64]map[string]any, len(records))
		for _, rec := range records {
			doi := rec.DOI
			if rec.DOILink != "" {
				doi = rec.DOILink
			}

			text, err := o.Source.FetchText(ctx, doi, rec.Source)
			if err != nil {
				fmt.Fprintf(w, "skipped: %d %s (%v)\n", rec.PrimaryID, rec.DOI, err)
				summary.Skipped++
				continue
			}

			flat := Flatten(o.Engine.Tag(text))
			fmt.Fprintf(w, "tagged:  %d %s (%d tags)\n", rec.PrimaryID, rec.DOI, len(flat))
			summary.Tagged++

			if len(flat) == 0 {
				continue
			}
			buffer[rec.PrimaryID] = flat
			rowsOut = append(rowsOut, csvRow{record: rec, tags: sanitizeKeys(flat)})
		}

		if err := o.Store.UpdateRecordTags(ctx, buffer); err != nil {
			return summary, fmt.Errorf("persisting batch: %w", err)
		}

		tr.LastProcessedID = records[len(records)-1].PrimaryID
		tr.Status = types.StatusInProgress
		tr.UpdatedAt = time.Now().UTC()
		if err := o.Store.UpsertTracker(ctx, tr); err != nil {
			return summary, err
		}
		summary.Batches++
	}

	if csvPath != "" {
		if err := writeCSV(csvPath, rowsOut); err != nil {
			return summary, err
		}
	}

	fmt.Fprintf(w, "\nRun summary: %d tagged, %d skipped in %d batch(es)\n",
		summary.Tagged, summary.Skipped, summary.Batches)
	return summary, nil
}

// sanitizeKeys renames tag-map keys to their storable column form.
func sanitizeKeys(tags map[string]any) map[string]any {
	out := make(map[string]any, len(tags))
	for key, v := range tags {
		out[store.SanitizeColumn(key)] = v
	}
	return out
}

// writeCSV exports the run's tagged rows. Columns are primary_id, doi,
// source, then the sorted union of sanitized tag columns.
func writeCSV(path string, rows []csvRow) error {
	colSet := make(map[string]bool)
	for _, r := range rows {
		for key := range r.tags {
			colSet[key] = true
		}
	}
	tagCols := make([]string, 0, len(colSet))
	for col := range colSet {
		tagCols = append(tagCols, col)
	}
	sort.Strings(tagCols)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := append([]string{"primary_id", "doi", "source"}, tagCols...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range rows {
		row := []string{
			strconv.FormatInt(r.record.PrimaryID, 10),
			r.record.DOI,
			r.record.Source,
		}
		for _, col := range tagCols {
			v, ok := r.tags[col]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(v))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
