package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavet/datavet/cmd/datavet/internal/clierr"
	"github.com/datavet/datavet/internal/engine"
)

const checkSpec = `version: 1.0
data_source: orders
validations:
  - not_null: id
  - not_null: name
`

func TestCheckCommandPasses(t *testing.T) {
	spec := writeFile(t, "spec.yaml", checkSpec)
	records := writeFile(t, "records.yaml", `records:
  - id: 1
    name: alpha
  - id: 2
    name: beta
schema:
  fields: [id, name]
`)

	out, err := runCommand(t, "check", spec, "--records", records)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ not-null:id")
	assert.Contains(t, out, "✓ not-null:name")
	assert.Contains(t, out, "✓ 2 rule(s) passed against orders")
}

func TestCheckCommandFailsOnNulls(t *testing.T) {
	spec := writeFile(t, "spec.yaml", checkSpec)
	records := writeFile(t, "records.yaml", `records:
  - id: 1
    name: alpha
  - id: 2
    name: null
`)

	out, err := runCommand(t, "check", spec, "--records", records)
	require.Error(t, err)
	assert.Equal(t, clierr.CodeGeneric, clierr.ExitCodeOf(err))
	assert.Contains(t, out, "✗ not-null:name: nulls found for 'name'")
	assert.Contains(t, err.Error(), "1 validation rule(s) failed")
}

func TestCheckCommandPersistsResults(t *testing.T) {
	spec := writeFile(t, "spec.yaml", checkSpec)
	records := writeFile(t, "records.yaml", `records:
  - id: 1
    name: null
`)
	outDir := filepath.Join(t.TempDir(), "runs")

	_, err := runCommand(t, "check", spec, "--records", records, "--out", outDir)
	require.Error(t, err)

	summary, err := engine.NewResultStore(outDir).ReadLastRun()
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "fail", summary.Status)
	assert.Equal(t, []string{"not-null:name"}, summary.Failed)
	assert.Len(t, summary.Results, 2)
}

func TestCheckCommandUnknownDirective(t *testing.T) {
	spec := writeFile(t, "spec.yaml", `version: 1.0
data_source: orders
validations:
  - frobnicate: id
`)
	records := writeFile(t, "records.yaml", "records:\n  - id: 1\n")

	_, err := runCommand(t, "check", spec, "--records", records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown directive "frobnicate"`)
}
