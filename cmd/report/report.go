// Package report handles ledger reporting commands
package report

import (
	"fmt"

	"tallybook/cmd/root"
	reportgen "tallybook/internal/report"
	"tallybook/internal/stats"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the ledger",
	Long:  `Summarize the ledger: overall totals, net amounts per category and the month-by-month trend.`,
}

// summaryCmd represents the report summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total income, expenses and balance",
	Long:  `Show total income, total expenses and the balance over all transactions.`,
	Run:   summaryFunc,
}

// categoriesCmd represents the report categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show net amounts per category",
	Long:  `Show the net amount per category, income counting positive and expenses negative.`,
	Run:   categoriesFunc,
}

// trendCmd represents the report trend command
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show month-by-month totals",
	Long:  `Show income, expenses and balance bucketed by calendar month.`,
	Run:   trendFunc,
}

func init() {
	Cmd.AddCommand(summaryCmd)
	Cmd.AddCommand(categoriesCmd)
	Cmd.AddCommand(trendCmd)
}

func summaryFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}
	fmt.Print(reportgen.RenderSummary(stats.Totals(l.Transactions())))
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}
	fmt.Print(reportgen.RenderCategoryReport(stats.CategoryReport(l.Transactions())))
}

func trendFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}
	fmt.Print(reportgen.RenderTrend(stats.Trend(l.Transactions())))
}
