// Package budget handles monthly budget commands
package budget

import (
	"fmt"

	"tallybook/cmd/root"
	"tallybook/internal/amountutils"
	"tallybook/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage the monthly budget goal",
	Long:  `Manage the monthly budget goal and check how much of it is spent.`,
}

// setCmd represents the budget set command
var setCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the monthly budget goal",
	Long: `Set the monthly budget goal. Setting the goal in a new month resets the
spending counter for that month.`,
	Args: cobra.ExactArgs(1),
	Run:  setFunc,
}

// statusCmd represents the budget status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the budget status for the tracked month",
	Long:  `Show the goal, the spending counter and the usage level for the tracked month.`,
	Run:   statusFunc,
}

func init() {
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(statusCmd)
}

func setFunc(cmd *cobra.Command, args []string) {
	amount, err := amountutils.ParseNonNegative(args[0])
	if err != nil {
		root.Log.Fatalf("Invalid amount: %v", err)
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	if err := l.SetBudgetGoal(amount); err != nil {
		root.Log.Fatalf("Error setting budget goal: %v", err)
	}

	fmt.Printf("Monthly budget goal set to %s.\n", amountutils.FormatAmount(amount))
	level, message := l.BudgetStatus()
	fmt.Print(report.RenderBudget(l.Budget(), string(level), message))
}

func statusFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	level, message := l.BudgetStatus()
	fmt.Print(report.RenderBudget(l.Budget(), string(level), message))
}
