// SPDX-License-Identifier: AGPL-3.0-or-later

// Package memsource provides an in-memory data source backed by fixed record
// slices, used by tests and the check command.
package memsource

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/datavet/datavet/internal/engine"
)

var (
	_ engine.Batch  = (*Batch)(nil)
	_ engine.Source = (*Source)(nil)
)

// Batch is a data batch backed by in-memory records.
type Batch struct {
	id      string
	source  string
	records []engine.Record
	schema  map[string]any
}

func (b *Batch) ID() string     { return b.id }
func (b *Batch) Source() string { return b.source }

func (b *Batch) Records() []engine.Record { return b.records }

func (b *Batch) Metadata() map[string]string {
	return map[string]string{"record_count": strconv.Itoa(len(b.records))}
}

// Schema returns the schema associated with the batch.
func (b *Batch) Schema() map[string]any { return b.schema }

// Config describes an in-memory source. BatchID is generated when left
// empty.
type Config struct {
	Name    string
	Records []engine.Record
	Schema  map[string]any
	BatchID string
}

// Source serves a single in-memory batch.
type Source struct {
	name    string
	records []engine.Record
	schema  map[string]any
	batchID string
}

// New creates an in-memory source from cfg.
func New(cfg Config) *Source {
	id := cfg.BatchID
	if id == "" {
		id = uuid.NewString()
	}
	return &Source{
		name:    cfg.Name,
		records: cfg.Records,
		schema:  cfg.Schema,
		batchID: id,
	}
}

func (s *Source) Name() string { return s.name }

// Batches returns the single backing batch; limit <= 0 means no limit.
func (s *Source) Batches(limit int) ([]engine.Batch, error) {
	batches := []engine.Batch{&Batch{
		id:      s.batchID,
		source:  s.name,
		records: s.records,
		schema:  s.schema,
	}}
	if limit > 0 && limit < len(batches) {
		batches = batches[:limit]
	}
	return batches, nil
}

func (s *Source) Metadata() map[string]string {
	return map[string]string{"batch_id": s.batchID}
}
