// Package search filters transaction collections and records query history.
package search

import (
	"fmt"
	"strings"
	"time"

	"tallybook/internal/dateutils"
	"tallybook/internal/models"
)

// Filter describes the criteria of a combined search. All set criteria are
// ANDed together. Payee and Category match case-insensitively and exactly.
// The date range applies only when both From and To are set; a single bound
// on its own is ignored.
type Filter struct {
	Payee    string
	Category string
	From     *time.Time
	To       *time.Time
}

// IsEmpty returns true if no criterion is set.
func (f Filter) IsEmpty() bool {
	return f.Payee == "" && f.Category == "" && f.From == nil && f.To == nil
}

func (f Filter) describe() string {
	payee, category, from, to := f.Payee, f.Category, "-", "-"
	if payee == "" {
		payee = "-"
	}
	if category == "" {
		category = "-"
	}
	if f.From != nil {
		from = dateutils.ToISODate(*f.From)
	}
	if f.To != nil {
		to = dateutils.ToISODate(*f.To)
	}
	return fmt.Sprintf("filter:%s:%s:%s:%s", payee, category, from, to)
}

// Engine runs searches over transaction slices handed to it per call and
// keeps an append-only history of every query executed during the session.
// The history is never pruned.
type Engine struct {
	history []string
}

// NewEngine creates an engine with an empty search history.
func NewEngine() *Engine {
	return &Engine{}
}

// ByPayee returns the transactions whose payee equals the given name,
// ignoring case.
func (e *Engine) ByPayee(txs []models.Transaction, payee string) []models.Transaction {
	result := keep(txs, func(tx models.Transaction) bool {
		return strings.EqualFold(tx.Payee, payee)
	})
	e.history = append(e.history, "payee:"+payee)
	return result
}

// ByCategory returns the transactions whose category equals the given name,
// ignoring case.
func (e *Engine) ByCategory(txs []models.Transaction, category string) []models.Transaction {
	result := keep(txs, func(tx models.Transaction) bool {
		return strings.EqualFold(tx.Category, category)
	})
	e.history = append(e.history, "category:"+category)
	return result
}

// ByDateRange returns the transactions dated within the range, inclusive on
// both ends at day precision.
func (e *Engine) ByDateRange(txs []models.Transaction, start, end time.Time) []models.Transaction {
	result := keep(txs, func(tx models.Transaction) bool {
		return inRange(tx.Date, start, end)
	})
	e.history = append(e.history, fmt.Sprintf("date:%s->%s", dateutils.ToISODate(start), dateutils.ToISODate(end)))
	return result
}

// Search applies a combined filter. An empty filter returns the input slice
// unchanged. Every invocation, including an empty one, is appended to the
// history.
func (e *Engine) Search(txs []models.Transaction, f Filter) []models.Transaction {
	result := txs
	if f.Payee != "" {
		result = keep(result, func(tx models.Transaction) bool {
			return strings.EqualFold(tx.Payee, f.Payee)
		})
	}
	if f.Category != "" {
		result = keep(result, func(tx models.Transaction) bool {
			return strings.EqualFold(tx.Category, f.Category)
		})
	}
	if f.From != nil && f.To != nil {
		result = keep(result, func(tx models.Transaction) bool {
			return inRange(tx.Date, *f.From, *f.To)
		})
	}
	e.history = append(e.history, f.describe())
	return result
}

// History returns a copy of the executed search history, oldest first.
func (e *Engine) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

func inRange(date, start, end time.Time) bool {
	return dateutils.CompareDates(date, start) >= 0 && dateutils.CompareDates(date, end) <= 0
}

func keep(txs []models.Transaction, match func(models.Transaction) bool) []models.Transaction {
	result := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if match(tx) {
			result = append(result, tx)
		}
	}
	return result
}
