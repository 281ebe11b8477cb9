package category_test

import (
	"testing"

	"tallybook/cmd/category"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSubcommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("subcommand %q not registered", name)
	return nil
}

func TestCategoryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "category", category.Cmd.Use)
	assert.Contains(t, category.Cmd.Short, "Manage transaction categories")
	assert.True(t, category.Cmd.HasSubCommands())
}

func TestCategoryCommand_Subcommands(t *testing.T) {
	for _, name := range []string{"add", "list", "edit", "rm"} {
		findSubcommand(t, category.Cmd, name)
	}
}

func TestCategoryAddCommand_Flags(t *testing.T) {
	addCmd := findSubcommand(t, category.Cmd, "add")

	nameFlag := addCmd.Flags().Lookup("name")
	require.NotNil(t, nameFlag)
	assert.Equal(t, "n", nameFlag.Shorthand)

	kindFlag := addCmd.Flags().Lookup("kind")
	require.NotNil(t, kindFlag)
	assert.Equal(t, "expense", kindFlag.DefValue)

	assert.NotNil(t, addCmd.Flags().Lookup("icon"))
}

func TestCategoryRmCommand_Metadata(t *testing.T) {
	rmCmd := findSubcommand(t, category.Cmd, "rm")

	assert.Equal(t, "rm <id>", rmCmd.Use)
	assert.Contains(t, rmCmd.Long, "keep their category")
	assert.NotNil(t, rmCmd.Args)
}
