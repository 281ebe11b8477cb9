package tx

import (
	"fmt"
	"time"

	"tallybook/cmd/root"
	"tallybook/internal/amountutils"
	"tallybook/internal/budget"
	"tallybook/internal/dateutils"
	"tallybook/internal/ledger"
	"tallybook/internal/models"

	"github.com/spf13/cobra"
)

// addCmd represents the tx add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
	Long:  `Record a new income or expense transaction in the ledger.`,
	Run:   addFunc,
}

func init() {
	addCmd.Flags().StringVarP(&root.Tx.Amount, "amount", "a", "", "Transaction amount (non-negative)")
	addCmd.Flags().StringVarP(&root.Tx.Kind, "kind", "k", "expense", "Transaction kind: income or expense")
	addCmd.Flags().StringVarP(&root.Tx.Category, "category", "c", "", "Category name")
	addCmd.Flags().StringVarP(&root.Tx.Date, "date", "d", "", "Transaction date (defaults to today)")
	addCmd.Flags().StringVarP(&root.Tx.Note, "note", "n", "", "Free-form note")
	addCmd.Flags().StringVarP(&root.Tx.Payee, "payee", "p", "", "Payee or source of the transaction")
	addCmd.MarkFlagRequired("amount")
	Cmd.AddCommand(addCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	amount, err := amountutils.ParseNonNegative(root.Tx.Amount)
	if err != nil {
		root.Log.Fatalf("Invalid amount: %v", err)
	}

	kind, err := models.ParseKind(root.Tx.Kind)
	if err != nil {
		root.Log.Fatalf("Invalid kind: %v", err)
	}

	date := dateutils.TruncateToDay(time.Now())
	if root.Tx.Date != "" {
		parsed, _, err := dateutils.ParseDate(root.Tx.Date)
		if err != nil {
			root.Log.Fatalf("Invalid date: %v", err)
		}
		date = parsed
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	tx, err := l.AddTransaction(ledger.Draft{
		Amount:   amount,
		Kind:     kind,
		Category: root.Tx.Category,
		Date:     date,
		Note:     root.Tx.Note,
		Payee:    root.Tx.Payee,
	})
	if err != nil {
		root.Log.Fatalf("Error adding transaction: %v", err)
	}

	fmt.Printf("Added transaction #%d: %s %s\n", tx.ID, tx.Kind, amountutils.FormatAmount(tx.Amount))

	// Surface the budget warning right where the spending happened
	if tx.IsExpense() {
		if level, message := l.BudgetStatus(); level == budget.LevelWarning || level == budget.LevelOver {
			fmt.Println(message)
		}
	}
}
