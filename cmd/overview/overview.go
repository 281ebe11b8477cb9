// Package overview handles the at-a-glance summary command
package overview

import (
	"fmt"
	"time"

	"tallybook/cmd/root"
	"tallybook/internal/dateutils"
	"tallybook/internal/report"
	"tallybook/internal/stats"

	"github.com/spf13/cobra"
)

// recentCount is how many of the latest transactions the overview shows.
const recentCount = 10

// Cmd represents the overview command
var Cmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the ledger at a glance",
	Long:  `Show overall totals, the budget status and the most recent transactions.`,
	Run:   overviewFunc,
}

func overviewFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	txs := l.Transactions()
	fmt.Print(report.RenderSummary(stats.Totals(txs)))
	fmt.Println()

	level, message := l.BudgetStatus()
	fmt.Print(report.RenderBudget(l.Budget(), string(level), message))

	now := time.Now()
	fmt.Printf("Days left this month: %d\n", dateutils.EndOfMonth(now).Day()-now.Day())

	if len(txs) > 0 {
		recent := txs
		if len(recent) > recentCount {
			recent = recent[len(recent)-recentCount:]
		}
		fmt.Println()
		fmt.Println("Recent transactions:")
		fmt.Print(report.RenderTransactions(recent))
	}
}
