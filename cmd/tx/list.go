package tx

import (
	"fmt"

	"tallybook/cmd/root"
	"tallybook/internal/report"

	"github.com/spf13/cobra"
)

// listCmd represents the tx list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all transactions",
	Long:  `List every transaction in the ledger, oldest entry first.`,
	Run:   listFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}
	fmt.Print(report.RenderTransactions(l.Transactions()))
}
