package tx

import (
	"fmt"
	"strconv"

	"tallybook/cmd/root"

	"github.com/spf13/cobra"
)

// rmCmd represents the tx rm command
var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a transaction",
	Long: `Remove a transaction from the ledger. Removing an expense gives the
amount back to the monthly budget counter.`,
	Args: cobra.ExactArgs(1),
	Run:  rmFunc,
}

func init() {
	Cmd.AddCommand(rmCmd)
}

func rmFunc(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		root.Log.Fatalf("Invalid transaction id %q", args[0])
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	ok, err := l.DeleteTransaction(id)
	if err != nil {
		root.Log.Fatalf("Error removing transaction: %v", err)
	}
	if !ok {
		root.Log.Fatalf("Transaction #%d not found", id)
	}
	fmt.Printf("Removed transaction #%d.\n", id)
}
