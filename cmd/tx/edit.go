package tx

import (
	"fmt"
	"strconv"

	"tallybook/cmd/root"
	"tallybook/internal/amountutils"
	"tallybook/internal/dateutils"
	"tallybook/internal/models"

	"github.com/spf13/cobra"
)

// editCmd represents the tx edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of an existing transaction",
	Long: `Edit fields of an existing transaction. Only the fields passed as flags
are changed; everything else keeps its current value. Editing never moves
the budget counter.`,
	Args: cobra.ExactArgs(1),
	Run:  editFunc,
}

func init() {
	editCmd.Flags().StringVarP(&root.Tx.Amount, "amount", "a", "", "New transaction amount")
	editCmd.Flags().StringVarP(&root.Tx.Kind, "kind", "k", "", "New transaction kind: income or expense")
	editCmd.Flags().StringVarP(&root.Tx.Category, "category", "c", "", "New category name")
	editCmd.Flags().StringVarP(&root.Tx.Date, "date", "d", "", "New transaction date")
	editCmd.Flags().StringVarP(&root.Tx.Note, "note", "n", "", "New note")
	editCmd.Flags().StringVarP(&root.Tx.Payee, "payee", "p", "", "New payee")
	Cmd.AddCommand(editCmd)
}

func editFunc(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		root.Log.Fatalf("Invalid transaction id %q", args[0])
	}

	update := models.TransactionUpdate{}
	if cmd.Flags().Changed("amount") {
		amount, err := amountutils.ParseNonNegative(root.Tx.Amount)
		if err != nil {
			root.Log.Fatalf("Invalid amount: %v", err)
		}
		update.Amount = &amount
	}
	if cmd.Flags().Changed("kind") {
		kind, err := models.ParseKind(root.Tx.Kind)
		if err != nil {
			root.Log.Fatalf("Invalid kind: %v", err)
		}
		update.Kind = &kind
	}
	if cmd.Flags().Changed("category") {
		update.Category = &root.Tx.Category
	}
	if cmd.Flags().Changed("date") {
		// Accept the same flexible formats as tx add, normalized to ISO
		date := root.Tx.Date
		if parsed, _, err := dateutils.ParseDate(root.Tx.Date); err == nil {
			date = dateutils.ToISODate(parsed)
		}
		update.Date = &date
	}
	if cmd.Flags().Changed("note") {
		update.Note = &root.Tx.Note
	}
	if cmd.Flags().Changed("payee") {
		update.Payee = &root.Tx.Payee
	}

	if update.IsEmpty() {
		root.Log.Fatal("Nothing to update: pass at least one field flag")
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	ok, err := l.UpdateTransaction(id, update)
	if err != nil {
		root.Log.Fatalf("Error updating transaction: %v", err)
	}
	if !ok {
		root.Log.Fatalf("Transaction #%d not found or the new date is invalid", id)
	}
	fmt.Printf("Updated transaction #%d.\n", id)
}
