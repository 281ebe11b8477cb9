package models

import "github.com/shopspring/decimal"

// Budget captures the monthly spending goal and the running total of expenses
// recorded against the live month. Spent is maintained incrementally by the
// budget tracker, not recomputed from the transaction list.
type Budget struct {
	Goal  decimal.Decimal `json:"monthly_goal" yaml:"monthly_goal"`
	Spent decimal.Decimal `json:"current_spending" yaml:"current_spending"`
	Month string          `json:"month" yaml:"month"` // "YYYY-MM" token
}
