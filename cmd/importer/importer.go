// Package importer handles the transaction import command
package importer

import (
	"tallybook/cmd/root"
	exporter "tallybook/internal/export"
	"tallybook/internal/fileutils"
	"tallybook/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV file",
	Long: `Import transactions from a CSV file in the export format. Imported rows
are recorded like freshly added transactions, so current-month expenses
count against the budget.`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.ImportInput, "input", "i", "", "Input CSV file")
	Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) {
	if !fileutils.FileExists(root.ImportInput) {
		root.Log.Fatalf("Input file %s does not exist", root.ImportInput)
	}

	txs, err := exporter.ReadCSV(root.ImportInput)
	if err != nil {
		root.Log.Fatalf("Error reading %s: %v", root.ImportInput, err)
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	// Imported rows get fresh IDs so they cannot collide with existing entries
	added := 0
	for _, tx := range txs {
		if _, err := l.AddTransaction(ledger.Draft{
			Amount:   tx.Amount,
			Kind:     tx.Kind,
			Category: tx.Category,
			Date:     tx.Date,
			Note:     tx.Note,
			Payee:    tx.Payee,
		}); err != nil {
			root.Log.Fatalf("Error importing transaction for %q: %v", tx.Payee, err)
		}
		added++
	}
	root.Log.Infof("Imported %d transactions from %s", added, root.ImportInput)
}
