// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/vaxlit/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-source tagging progress",
	Long: `Status prints the processing tracker: for every source, the last
processed record ID, the run status, and when it was last updated.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().String("db", "", "SQLite database path (default vaxlit.db)")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("db_path")
	}
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.Trackers(context.Background())
	if err != nil {
		return err
	}
	if len(trackers) == 0 {
		fmt.Println("No tagging runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tLAST ID\tSTATUS\tUPDATED")
	for _, tr := range trackers {
		updated := ""
		if !tr.UpdatedAt.IsZero() {
			updated = tr.UpdatedAt.Local().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", tr.SourceName, tr.LastProcessedID, tr.Status, updated)
	}
	return w.Flush()
}
