// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads publisher API tokens from a directory of
// plain-text files. Each file holds one token: the filename is the source
// name (e.g. "cochrane", "embase") and the file contents (trimmed) are the
// bearer token sent with fetches for that source.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads all files in dir and returns a map of lowercased filename to
// trimmed contents, suitable for FetchConfig.APIKeys. A missing directory
// is not an error; Load returns an empty map so unauthenticated fetching
// proceeds. Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	tokens := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			tokens[strings.ToLower(name)] = value
		}
	}

	return tokens, nil
}
