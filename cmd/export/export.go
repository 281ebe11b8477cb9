// Package export handles transaction export commands
package export

import (
	"path/filepath"

	"tallybook/cmd/root"
	"tallybook/internal/config"
	exporter "tallybook/internal/export"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to a file",
	Long:  `Export all transactions to a CSV, JSON or YAML file.`,
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.ExportFormat, "format", "f", "csv", "Export format: csv, json or yaml")
	Cmd.Flags().StringVarP(&root.ExportOutput, "output", "o", "", "Output file (defaults to transactions.<format> in the export directory)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	format, err := exporter.ParseFormat(root.ExportFormat)
	if err != nil {
		root.Log.Fatalf("Invalid format: %v", err)
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	output := root.ExportOutput
	if output == "" {
		dir := config.GetGlobalConfig().Export.Directory
		if dir == "" {
			dir = "."
		}
		output = filepath.Join(dir, "transactions."+string(format))
	}

	txs := l.Transactions()
	if err := exporter.WriteFile(output, txs, format); err != nil {
		root.Log.Fatalf("Error exporting transactions: %v", err)
	}
	root.Log.Infof("Exported %d transactions to %s", len(txs), output)
}
