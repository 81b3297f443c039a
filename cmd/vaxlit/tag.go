// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/vaxlit/internal/batch"
	"github.com/meshintel/vaxlit/internal/fetch"
	"github.com/meshintel/vaxlit/internal/secrets"
	"github.com/meshintel/vaxlit/internal/store"
	"github.com/meshintel/vaxlit/internal/tagger"
	"github.com/meshintel/vaxlit/internal/vocab"
	"github.com/meshintel/vaxlit/pkg/types"
)

const (
	defaultDBPath    = "vaxlit.db"
	defaultBatchSize = 50
	defaultTimeout   = 15 * time.Second
)

var tagCmd = &cobra.Command{
	Use:   "tag [source_name] [selection_query] [output_csv]",
	Short: "Tag publication records for a source",
	Long: `Tag runs the batch orchestrator for one source: it pages through the
source's records in primary-id order, fetches each document's full text by
DOI, tags it against the vocabulary, and writes the tags back to the
database and to the output CSV. Progress is tracked per source, so an
interrupted run resumes where it left off.

With --text, tag classifies a single document from a file (or stdin when
the path is "-") and prints the tag map as YAML instead.`,
	RunE: runTag,
}

func init() {
	tagCmd.Flags().String("db", "", "SQLite database path (default vaxlit.db)")
	tagCmd.Flags().Int("batch-size", 0, "records per batch (default 50)")
	tagCmd.Flags().Duration("timeout", 0, "document fetch timeout (default 15s)")
	tagCmd.Flags().String("vocab", "", "YAML vocabulary file overriding the builtin")
	tagCmd.Flags().String("text", "", "tag a single document from this file instead of running a batch")
	tagCmd.Flags().String("secrets", "", "directory of per-publisher API token files")

	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	cfg, err := loadBatchConfig()
	if err != nil {
		return err
	}

	v, err := loadVocabulary(cmd, cfg.VocabPath)
	if err != nil {
		return err
	}
	engine := tagger.New(v, os.Stderr)

	if textPath, _ := cmd.Flags().GetString("text"); textPath != "" {
		return tagText(engine, textPath)
	}

	if len(args) != 3 {
		return fmt.Errorf("usage: vaxlit tag <source_name> <selection_query> <output_csv>")
	}
	sourceName, selection, csvPath := args[0], args[1], args[2]

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if batchSize, _ := cmd.Flags().GetInt("batch-size"); batchSize > 0 {
		cfg.BatchSize = batchSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.Fetch.Timeout = timeout
	}
	if cfg.Fetch.Timeout <= 0 {
		cfg.Fetch.Timeout = defaultTimeout
	}

	if secretsDir, _ := cmd.Flags().GetString("secrets"); secretsDir != "" {
		cfg.SecretsDir = secretsDir
	}
	if cfg.SecretsDir != "" {
		keys, err := secrets.Load(cfg.SecretsDir)
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			cfg.Fetch.APIKeys = keys
		}
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	orch := &batch.Orchestrator{
		Store:     st,
		Source:    fetch.NewHTTPSource(cfg.Fetch),
		Engine:    engine,
		BatchSize: cfg.BatchSize,
	}

	// Interrupts stop cleanly between batches.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := orch.Run(ctx, sourceName, selection, csvPath, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d record(s) skipped", summary.Skipped)
	}
	return nil
}

// tagText classifies one document and dumps the tag map as YAML.
func tagText(engine *tagger.Engine, path string) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	tags := engine.Tag(string(data))
	out, err := yaml.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// loadBatchConfig unmarshals the viper config into a BatchConfig. Keys
// follow the struct's mapstructure tags (db_path, batch_size, vocab_path,
// secrets_dir, fetch.timeout, ...).
func loadBatchConfig() (types.BatchConfig, error) {
	var cfg types.BatchConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// loadVocabulary returns the builtin vocabulary, the YAML file named by
// --vocab, or the config's vocab_path. A malformed file is fatal.
func loadVocabulary(cmd *cobra.Command, fallback string) (*vocab.Vocabulary, error) {
	path, _ := cmd.Flags().GetString("vocab")
	if path == "" {
		path = fallback
	}
	if path == "" {
		return vocab.Default(), nil
	}
	return vocab.Load(path)
}
