// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// TrackerStatus indicates the state of a per-source tagging run.
type TrackerStatus string

const (
	StatusPending    TrackerStatus = "pending"
	StatusInProgress TrackerStatus = "in_progress"
	StatusCompleted  TrackerStatus = "completed"
)

// Record is one publication row from the base store. Scrapers populate
// these; the orchestrator reads them in ascending PrimaryID order.
type Record struct {
	// PrimaryID is the monotonically increasing row identifier.
	PrimaryID int64 `json:"primary_id" yaml:"primary_id"`

	// DOI identifies the publication. For some sources this is a raw
	// citation-manager export rather than a bare DOI (see fetch.ResolveURL).
	DOI string `json:"doi" yaml:"doi"`

	// DOILink is an optional pre-resolved URL for the full text.
	DOILink string `json:"doi_link,omitempty" yaml:"doi_link,omitempty"`

	// Source names the scraper that produced the record
	// (e.g. "Cochrane", "Medline", "OVID", "LOVE").
	Source string `json:"source" yaml:"source"`

	// Title is the publication title, when the scraper captured one.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// TrackerRow is the per-source progress record. One row per source;
// mutated only by the orchestrator.
type TrackerRow struct {
	SourceName      string        `json:"source_name" yaml:"source_name"`
	LastProcessedID int64         `json:"last_processed_id" yaml:"last_processed_id"`
	Status          TrackerStatus `json:"status" yaml:"status"`
	UpdatedAt       time.Time     `json:"updated_at" yaml:"updated_at"`
}
