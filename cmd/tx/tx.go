// Package tx handles transaction bookkeeping commands
package tx

import (
	"github.com/spf13/cobra"
)

// Cmd represents the tx command
var Cmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage ledger transactions",
	Long:  `Manage ledger transactions: add income and expenses, list them, edit fields and remove entries.`,
}
