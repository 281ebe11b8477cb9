package advisor

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tallybook/internal/dateutils"
	"tallybook/internal/models"
	"tallybook/internal/stats"
)

// Fixed rule thresholds for the habit commentary.
var (
	concentrationHigh = decimal.NewFromFloat(0.5)
	concentrationMild = decimal.NewFromFloat(0.3)
	largeOutlayShare  = decimal.NewFromFloat(0.3)
	hundred           = decimal.NewFromInt(100)
)

const (
	topListSize          = 3
	fragmentedMinRecords = 10
)

const noTransactionsMessage = "No transactions recorded yet, so there is nothing to analyze.\n" +
	"Record a few everyday income and expense entries, then run the advisor again."

const noExpensesMessage = "No expenses recorded yet, so spending habits cannot be analyzed.\n" +
	"Record some everyday costs such as food or transport, then run the advisor again."

const closingNote = "This report is derived from the recorded data with simple rules of thumb\n" +
	"and is meant as a starting point, not as financial advice. For detailed\n" +
	"planning, combine it with a real budget, savings goals and your own judgement."

// rankedEntry is one row of a top-N breakdown.
type rankedEntry struct {
	Name   string
	Amount decimal.Decimal
}

// Report builds the deterministic spending analysis for the given
// transactions. It never fails; with no transactions or no expenses it
// returns a fixed guidance message instead of a report.
func Report(txs []models.Transaction) string {
	if len(txs) == 0 {
		return noTransactionsMessage
	}

	var expenses []models.Transaction
	for _, tx := range txs {
		if tx.IsExpense() {
			expenses = append(expenses, tx)
		}
	}
	if len(expenses) == 0 {
		return noExpensesMessage
	}

	summary := stats.Totals(txs)
	first, last := dateSpan(txs)
	days := dateutils.DaySpan(first, last)
	avgDaily := summary.Expense.Div(decimal.NewFromInt(int64(days)))

	categories := rankByAmount(expenseSumsBy(expenses, func(tx models.Transaction) string { return tx.Category }))
	payees := rankByAmount(expenseSumsBy(expenses, func(tx models.Transaction) string { return tx.Payee }))
	largest := largestExpense(expenses)

	var lines []string
	lines = appendOverview(lines, summary, first, last, days, avgDaily)
	lines = appendSpendingStructure(lines, summary, categories, payees)
	lines = appendHabits(lines, summary, categories, largest, len(expenses), avgDaily)
	lines = append(lines, "", closingNote)

	return strings.Join(lines, "\n")
}

func appendOverview(lines []string, summary stats.Summary, first, last time.Time, days int, avgDaily decimal.Decimal) []string {
	lines = append(lines, "1. Overview")
	lines = append(lines, fmt.Sprintf("- Total expenses: %s", summary.Expense.StringFixed(2)))
	if summary.Income.IsPositive() {
		lines = append(lines, fmt.Sprintf("- Total income: %s", summary.Income.StringFixed(2)))
		lines = append(lines, fmt.Sprintf("- Net balance for the period: %s", summary.Balance.StringFixed(2)))
	} else {
		lines = append(lines, "- No income recorded; the figures cover expenses only.")
	}
	lines = append(lines, fmt.Sprintf("- Period covered: %s to %s (%d days)",
		dateutils.ToISODate(first), dateutils.ToISODate(last), days))
	lines = append(lines, fmt.Sprintf("- Average daily spending: %s", avgDaily.StringFixed(2)))
	return lines
}

func appendSpendingStructure(lines []string, summary stats.Summary, categories, payees []rankedEntry) []string {
	lines = append(lines, "", "2. Spending structure")

	if len(categories) > 0 {
		lines = append(lines, "Top categories by amount spent:")
		for _, entry := range categories {
			lines = append(lines, fmt.Sprintf("- %s: %s (%s%% of total spending)",
				entry.Name, entry.Amount.StringFixed(2), percentOf(entry.Amount, summary.Expense)))
		}
	} else {
		lines = append(lines, "No category information recorded. Fill in the category field when adding expenses to unlock this breakdown.")
	}

	if len(payees) > 0 {
		lines = append(lines, "Payees with the most spending:")
		for _, entry := range payees {
			lines = append(lines, fmt.Sprintf("- %s: %s", entry.Name, entry.Amount.StringFixed(2)))
		}
	} else {
		lines = append(lines, "No payee information recorded. Fill in the payee field for a finer breakdown.")
	}
	return lines
}

func appendHabits(lines []string, summary stats.Summary, categories []rankedEntry, largest models.Transaction, expenseCount int, avgDaily decimal.Decimal) []string {
	lines = append(lines, "", "3. Habits and risks")

	if len(categories) > 0 && summary.Expense.IsPositive() {
		top := categories[0]
		ratio := top.Amount.Div(summary.Expense)
		switch {
		case ratio.GreaterThanOrEqual(concentrationHigh):
			lines = append(lines,
				fmt.Sprintf("- Spending is highly concentrated: %s accounts for more than half of all expenses.", top.Name),
				"  Review whether these costs are essential and consider a stricter cap for this category.")
		case ratio.GreaterThanOrEqual(concentrationMild):
			lines = append(lines,
				fmt.Sprintf("- %s is the single largest spending category at about %s%% of the total.", top.Name, ratio.Mul(hundred).StringFixed(0)),
				"  Start optimizing there, for example by finding cheaper alternatives or skipping impulse buys.")
		default:
			lines = append(lines, "- Spending is spread fairly evenly across categories, with no single one dominating.")
		}
	}

	switch {
	case summary.Income.IsPositive() && summary.Balance.IsNegative():
		lines = append(lines,
			"- Expenses exceeded income in this period, leaving a negative balance.",
			"  Consider trimming discretionary costs such as entertainment or eating out, and look for steadier income.")
	case summary.Income.IsPositive() && summary.Balance.IsPositive():
		lines = append(lines,
			"- Income exceeded expenses in this period, which is a healthy position.",
			"  With savings covered, there is room for deliberate spending on things like learning or health.")
	case !summary.Income.IsPositive():
		lines = append(lines,
			"- No income recorded yet, so the overall balance cannot be judged.",
			"  Track income alongside expenses for a fuller picture of your finances.")
	}

	if largest.Amount.GreaterThanOrEqual(summary.Expense.Mul(largeOutlayShare)) {
		lines = append(lines,
			fmt.Sprintf("- Largest single expense: %s in %s on %s, a sizeable share of total spending.",
				largest.Amount.StringFixed(2), largest.Category, dateutils.ToISODate(largest.Date)),
			"  Review whether it was necessary, and budget ahead when similar purchases come up.")
	}

	if expenseCount >= fragmentedMinRecords {
		avgPerExpense := summary.Expense.Div(decimal.NewFromInt(int64(expenseCount)))
		if avgPerExpense.LessThan(avgDaily) {
			lines = append(lines,
				"- Many small purchases: single amounts are low but they add up quickly.",
				"  Fragmented spending is easy to overlook. Review it regularly to spot habits worth dropping.")
		}
	}
	return lines
}

// dateSpan returns the earliest and latest transaction dates.
func dateSpan(txs []models.Transaction) (time.Time, time.Time) {
	first, last := txs[0].Date, txs[0].Date
	for _, tx := range txs[1:] {
		if tx.Date.Before(first) {
			first = tx.Date
		}
		if tx.Date.After(last) {
			last = tx.Date
		}
	}
	return first, last
}

// expenseSumsBy folds expense amounts into buckets keyed by the given field.
// Transactions with an empty key are skipped.
func expenseSumsBy(expenses []models.Transaction, key func(models.Transaction) string) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range expenses {
		k := key(tx)
		if k == "" {
			continue
		}
		sums[k] = sums[k].Add(tx.Amount)
	}
	return sums
}

// rankByAmount orders buckets by amount descending, breaking ties by name so
// the report is stable, and keeps the top entries.
func rankByAmount(sums map[string]decimal.Decimal) []rankedEntry {
	entries := make([]rankedEntry, 0, len(sums))
	for name, amount := range sums {
		entries = append(entries, rankedEntry{Name: name, Amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Amount.GreaterThan(entries[j].Amount)
	})
	if len(entries) > topListSize {
		entries = entries[:topListSize]
	}
	return entries
}

func largestExpense(expenses []models.Transaction) models.Transaction {
	largest := expenses[0]
	for _, tx := range expenses[1:] {
		if tx.Amount.GreaterThan(largest.Amount) {
			largest = tx
		}
	}
	return largest
}

func percentOf(part, total decimal.Decimal) string {
	if !total.IsPositive() {
		return "0.0"
	}
	return part.Div(total).Mul(hundred).StringFixed(1)
}
