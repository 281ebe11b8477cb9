// Package report renders transaction listings and aggregate figures as
// aligned text for terminal output.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"tallybook/internal/amountutils"
	"tallybook/internal/dateutils"
	"tallybook/internal/models"
	"tallybook/internal/stats"
)

const noTransactionsLine = "No transactions recorded.\n"

func newTable(buf *bytes.Buffer) *tabwriter.Writer {
	return tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
}

// RenderTransactions formats transactions as a text table in input order.
func RenderTransactions(txs []models.Transaction) string {
	if len(txs) == 0 {
		return noTransactionsLine
	}

	var buf bytes.Buffer
	w := newTable(&buf)
	fmt.Fprintln(w, "ID\tDATE\tKIND\tAMOUNT\tCATEGORY\tPAYEE\tNOTE")
	for _, tx := range txs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID,
			dateutils.ToISODate(tx.Date),
			tx.Kind,
			amountutils.FormatAmount(tx.Amount),
			tx.Category,
			tx.Payee,
			tx.Note)
	}
	w.Flush()
	return buf.String()
}

// RenderCategories formats the category list as a text table.
func RenderCategories(categories []models.Category) string {
	if len(categories) == 0 {
		return "No categories defined.\n"
	}

	var buf bytes.Buffer
	w := newTable(&buf)
	fmt.Fprintln(w, "ID\tNAME\tICON\tKIND")
	for _, category := range categories {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", category.ID, category.Name, category.Icon, category.Kind)
	}
	w.Flush()
	return buf.String()
}

// RenderSummary formats the income/expense/balance totals.
func RenderSummary(summary stats.Summary) string {
	var buf bytes.Buffer
	w := newTable(&buf)
	fmt.Fprintf(w, "Income:\t%s\n", amountutils.FormatAmount(summary.Income))
	fmt.Fprintf(w, "Expense:\t%s\n", amountutils.FormatAmount(summary.Expense))
	fmt.Fprintf(w, "Balance:\t%s\n", amountutils.FormatAmount(summary.Balance))
	w.Flush()
	return buf.String()
}

// RenderCategoryReport formats per-category net amounts, sorted by name.
// Expense-only categories show as negative.
func RenderCategoryReport(nets map[string]decimal.Decimal) string {
	if len(nets) == 0 {
		return noTransactionsLine
	}

	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	w := newTable(&buf)
	fmt.Fprintln(w, "CATEGORY\tNET")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, amountutils.FormatAmount(nets[name]))
	}
	w.Flush()
	return buf.String()
}

// RenderTrend formats monthly income/expense/balance buckets in calendar
// order.
func RenderTrend(trend map[string]stats.Summary) string {
	if len(trend) == 0 {
		return noTransactionsLine
	}

	var buf bytes.Buffer
	w := newTable(&buf)
	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSE\tBALANCE")
	for _, month := range stats.Months(trend) {
		bucket := trend[month]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			month,
			amountutils.FormatAmount(bucket.Income),
			amountutils.FormatAmount(bucket.Expense),
			amountutils.FormatAmount(bucket.Balance))
	}
	w.Flush()
	return buf.String()
}

// RenderBudget formats the budget state with its status message. Without a
// positive goal only the status message is shown.
func RenderBudget(b models.Budget, level, message string) string {
	if !b.Goal.IsPositive() {
		return message + "\n"
	}

	var buf bytes.Buffer
	w := newTable(&buf)
	fmt.Fprintf(w, "Month:\t%s\n", b.Month)
	fmt.Fprintf(w, "Goal:\t%s\n", amountutils.FormatAmount(b.Goal))
	fmt.Fprintf(w, "Spent:\t%s\n", amountutils.FormatAmount(b.Spent))
	fmt.Fprintf(w, "Status:\t%s\n", level)
	w.Flush()
	buf.WriteString(message + "\n")
	return buf.String()
}
