// Package stats computes aggregate figures over transaction collections.
//
// All functions are pure and stateless: they operate on whatever slice the
// caller supplies, so they can be applied repeatedly to different subsets
// (a search result, a single month, the full ledger) without side effects.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"tallybook/internal/dateutils"
	"tallybook/internal/models"
)

// Summary holds the aggregate income, expense and balance of a transaction set.
// Income and Expense are non-negative magnitudes; Balance is income minus
// expense and may be negative.
type Summary struct {
	Income  decimal.Decimal `json:"income" yaml:"income"`
	Expense decimal.Decimal `json:"expense" yaml:"expense"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// Totals sums income and expense magnitudes over the given transactions.
func Totals(txs []models.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		if tx.IsIncome() {
			s.Income = s.Income.Add(tx.Amount)
		} else {
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// CategoryReport aggregates net amounts per category name. Income contributes
// positively and expense negatively, so expense-only categories show up as
// negative totals.
func CategoryReport(txs []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		totals[tx.Category] = totals[tx.Category].Add(tx.SignedAmount())
	}
	return totals
}

// Trend groups transactions by the calendar month of their date and
// accumulates a Summary per "YYYY-MM" bucket. The bucket balance is refreshed
// on every fold, so it always equals the bucket's final income minus expense.
func Trend(txs []models.Transaction) map[string]Summary {
	buckets := make(map[string]Summary)
	for _, tx := range txs {
		key := dateutils.MonthKey(tx.Date)
		bucket := buckets[key]
		if tx.IsIncome() {
			bucket.Income = bucket.Income.Add(tx.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(tx.Amount)
		}
		bucket.Balance = bucket.Income.Sub(bucket.Expense)
		buckets[key] = bucket
	}
	return buckets
}

// Months returns a trend's month keys in ascending order. "YYYY-MM" tokens
// sort lexicographically in chronological order.
func Months(trend map[string]Summary) []string {
	months := make([]string, 0, len(trend))
	for month := range trend {
		months = append(months, month)
	}
	sort.Strings(months)
	return months
}
