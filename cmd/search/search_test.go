package search_test

import (
	"testing"

	"tallybook/cmd/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "search", search.Cmd.Use)
	assert.Contains(t, search.Cmd.Short, "Search transactions")
	assert.Contains(t, search.Cmd.Long, "recorded in the history")
	assert.NotNil(t, search.Cmd.Run)
}

func TestSearchCommand_Flags(t *testing.T) {
	payeeFlag := search.Cmd.Flags().Lookup("payee")
	require.NotNil(t, payeeFlag)
	assert.Equal(t, "p", payeeFlag.Shorthand)

	monthFlag := search.Cmd.Flags().Lookup("month")
	require.NotNil(t, monthFlag)
	assert.Equal(t, "m", monthFlag.Shorthand)

	for _, name := range []string{"category", "from", "to"} {
		assert.NotNil(t, search.Cmd.Flags().Lookup(name), "flag %q", name)
	}
}

func TestSearchHistoryCommand_Registered(t *testing.T) {
	for _, c := range search.Cmd.Commands() {
		if c.Name() == "history" {
			assert.NotNil(t, c.Run)
			return
		}
	}
	t.Fatal("history subcommand not registered")
}
