package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavet/datavet/internal/engine"
	"github.com/datavet/datavet/internal/memsource"
)

func buildBatch(t *testing.T, records []engine.Record) engine.Batch {
	t.Helper()
	src := memsource.New(memsource.Config{
		Name:    "test-source",
		Records: records,
		Schema:  map[string]any{"fields": []string{"id", "name"}},
	})
	batches, err := src.Batches(0)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	return batches[0]
}

func TestNotNullPassesWhenFieldPresent(t *testing.T) {
	batch := buildBatch(t, []engine.Record{
		{"id": 1, "name": "alpha"},
		{"id": 2, "name": "beta"},
	})

	results := NewNotNull("name").Validate(batch)

	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
	assert.Empty(t, results[0].Message)
	assert.Equal(t, batch.ID(), results[0].BatchID)
}

func TestNotNullFailsOnNullValue(t *testing.T) {
	batch := buildBatch(t, []engine.Record{
		{"id": 1, "name": nil},
		{"id": 2, "name": "beta"},
	})

	results := NewNotNull("name").Validate(batch)

	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Equal(t, "nulls found for 'name'", results[0].Message)
	assert.Equal(t, map[string]string{"field": "name"}, results[0].Metadata)
}

func TestNotNullFailsOnMissingField(t *testing.T) {
	batch := buildBatch(t, []engine.Record{
		{"id": 1},
	})

	results := NewNotNull("name").Validate(batch)

	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
}

func TestEngineCollectsRuleResults(t *testing.T) {
	batch := buildBatch(t, []engine.Record{
		{"id": 1, "name": "alpha"},
		{"id": 2, "name": nil},
	})

	eng := engine.NewSimpleEngine(NewNotNull("name"))
	results := eng.Validate(batch)

	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Equal(t, "not-null:name", results[0].RuleID)
}
