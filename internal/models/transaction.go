// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction brings money in or moves it out.
type TransactionKind string

const (
	// KindIncome marks money received (salary, refunds, transfers in).
	KindIncome TransactionKind = "income"
	// KindExpense marks money spent.
	KindExpense TransactionKind = "expense"
)

// ParseKind normalizes a user-supplied kind string into a TransactionKind.
func ParseKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction kind %q (want income or expense)", s)
	}
}

// Valid returns true if the kind is one of the two known values.
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction represents a single income or expense record.
// Amount is always a positive magnitude; the sign of its contribution to
// totals is derived from Kind.
type Transaction struct {
	ID       int             `json:"id" yaml:"id"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Kind     TransactionKind `json:"kind" yaml:"kind"`
	Category string          `json:"category" yaml:"category"`
	Date     time.Time       `json:"date" yaml:"date"`
	Note     string          `json:"note" yaml:"note"`
	Payee    string          `json:"payee" yaml:"payee"` // merchant for expenses, payer for income
}

// IsExpense returns true if the transaction records money spent.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// IsIncome returns true if the transaction records money received.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// SignedAmount returns the transaction's net contribution to a balance:
// +Amount for income, -Amount for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}
