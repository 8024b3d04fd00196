// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ResultStore handles reading and writing engine run results.
type ResultStore struct {
	baseDir string
}

// NewResultStore creates a store at the given base directory
// (e.g. .datavet/runs).
func NewResultStore(baseDir string) *ResultStore {
	return &ResultStore{baseDir: baseDir}
}

// RunSummary is the persisted outcome of one engine run.
// Matches the <baseDir>/last-run.json schema.
type RunSummary struct {
	Status  string   `json:"status"` // "pass" or "fail"
	Results []Result `json:"results"`
	Failed  []string `json:"failed"` // Rule IDs with at least one failed result
}

func (s *ResultStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

// WriteRun persists the results of a run, replacing any previous summary.
func (s *ResultStore) WriteRun(results []Result) error {
	if err := os.MkdirAll(s.baseDir, 0o750); err != nil {
		return fmt.Errorf("creating run dir: %w", err)
	}

	summary := Summarize(results)

	f, err := os.Create(s.lastRunPath())
	if err != nil {
		return fmt.Errorf("creating last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encoding last run: %w", err)
	}
	return nil
}

// ReadLastRun loads the last run summary. A missing file is clean state and
// returns nil, nil.
func (s *ResultStore) ReadLastRun() (*RunSummary, error) {
	f, err := os.Open(s.lastRunPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var summary RunSummary
	if err := json.NewDecoder(f).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &summary, nil
}

// Summarize folds a result list into a run summary. Failed rule IDs keep
// first-failure order without duplicates.
func Summarize(results []Result) RunSummary {
	summary := RunSummary{Status: "pass", Results: results}
	seen := make(map[string]bool)
	for _, r := range results {
		if r.Passed || seen[r.RuleID] {
			continue
		}
		seen[r.RuleID] = true
		summary.Status = "fail"
		summary.Failed = append(summary.Failed, r.RuleID)
	}
	return summary
}
