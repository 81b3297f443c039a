// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/vaxlit/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show or validate the tagging vocabulary",
	Long: `Vocab prints the active vocabulary as YAML. With --validate it only
checks the file and reports problems: duplicate keys, malformed age-group
bands, or unescapable term surfaces.`,
	RunE: runVocab,
}

func init() {
	vocabCmd.Flags().String("file", "", "YAML vocabulary file (default: builtin)")
	vocabCmd.Flags().Bool("validate", false, "validate only, print nothing on success")

	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	validateOnly, _ := cmd.Flags().GetBool("validate")

	var (
		v   *vocab.Vocabulary
		err error
	)
	if path == "" {
		v = vocab.Default()
	} else {
		v, err = vocab.Load(path)
		if err != nil {
			return err
		}
	}

	if validateOnly {
		fmt.Fprintln(cmd.OutOrStdout(), "vocabulary OK")
		return nil
	}

	out, err := yaml.Marshal(v.MarshalRaw())
	if err != nil {
		return fmt.Errorf("marshaling vocabulary: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
