package export_test

import (
	"testing"

	"tallybook/cmd/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", export.Cmd.Use)
	assert.Contains(t, export.Cmd.Short, "Export transactions")
	assert.NotNil(t, export.Cmd.Run)
}

func TestExportCommand_Flags(t *testing.T) {
	formatFlag := export.Cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Equal(t, "csv", formatFlag.DefValue)

	outputFlag := export.Cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
}
