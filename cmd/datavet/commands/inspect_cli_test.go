package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datavet/datavet/internal/testutil/golden"
)

func TestInspectCommandGolden(t *testing.T) {
	path := writeFile(t, "spec.yaml", `# nightly orders feed
data_source: orders
version: "1.0"
owner:
  team: data-platform
validations:
  - not_null: id
  - not_null: customer_id
`)

	out, err := runCommand(t, "inspect", path)
	require.NoError(t, err)

	golden.Assert(t, golden.TestdataDir(t), "inspect_spec", out)
}

func TestInspectOutputReloads(t *testing.T) {
	path := writeFile(t, "spec.yaml", validSpec)

	out, err := runCommand(t, "inspect", path)
	require.NoError(t, err)

	// The canonical form must itself be a loadable spec.
	reloaded := writeFile(t, "normalized.yaml", out)
	_, err = runCommand(t, "validate", reloaded)
	require.NoError(t, err)
}
