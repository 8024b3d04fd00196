// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine defines the validation contracts and the reference engine
// that applies rules to data batches.
package engine

// Record is a single data row keyed by field name.
type Record = map[string]any

// Batch is a bounded set of records from a source.
type Batch interface {
	// ID returns a unique identifier for the batch.
	ID() string
	// Source returns the originating data source name.
	Source() string
	// Records returns the rows contained in the batch.
	Records() []Record
	// Metadata returns descriptive metadata, e.g. record counts.
	Metadata() map[string]string
}

// Source is a logical provider of batches. Implementations encapsulate
// connection details and retrieval semantics.
type Source interface {
	// Name returns a human-readable identifier for the source.
	Name() string
	// Batches returns up to limit batches; limit <= 0 means all.
	Batches(limit int) ([]Batch, error)
	// Metadata returns descriptive metadata about the source.
	Metadata() map[string]string
}

// Rule is a single validation applied to a batch.
type Rule interface {
	// ID returns a unique identifier for the rule.
	ID() string
	// Description returns a human-readable summary.
	Description() string
	// AppliesTo reports whether the rule should run for the batch.
	AppliesTo(batch Batch) bool
	// Validate runs the rule and returns its results.
	Validate(batch Batch) []Result
	// Metadata returns rule metadata, e.g. severity or target field.
	Metadata() map[string]string
}

// Result is the outcome of applying one rule to one batch.
type Result struct {
	RuleID   string            `json:"rule_id"`
	BatchID  string            `json:"batch_id"`
	Passed   bool              `json:"passed"`
	Message  string            `json:"message,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Engine coordinates rule execution over batches.
type Engine interface {
	Register(rules ...Rule)
	Validate(batch Batch) []Result
	Metadata() map[string]string
}
