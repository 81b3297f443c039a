// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/vaxlit/internal/store"
	"github.com/meshintel/vaxlit/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import [source_name] [records.csv]",
	Short: "Load publication records from a CSV export",
	Long: `Import seeds the base table with publication records from a scraper's
CSV export. The file needs a header row; recognized columns are doi
(required), doi_link, and title. Records receive ascending primary IDs in
file order.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("db", "", "SQLite database path (default vaxlit.db)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	sourceName, csvPath := args[0], args[1]

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("db_path")
	}
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", csvPath, err)
	}
	defer f.Close()

	records, err := readRecordsCSV(f, sourceName)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", csvPath, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%s contains no records", csvPath)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.InsertRecords(context.Background(), records); err != nil {
		return err
	}
	fmt.Printf("Imported %d record(s) for %s\n", len(records), sourceName)
	return nil
}

// readRecordsCSV parses a header-first CSV into records for sourceName.
func readRecordsCSV(r io.Reader, sourceName string) ([]types.Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	doiIdx, ok := col["doi"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "doi")
	}

	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	var records []types.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if doiIdx >= len(row) || row[doiIdx] == "" {
			continue
		}
		records = append(records, types.Record{
			DOI:     row[doiIdx],
			DOILink: field(row, "doi_link"),
			Title:   field(row, "title"),
			Source:  sourceName,
		})
	}
	return records, nil
}
