package models

import "github.com/shopspring/decimal"

// TransactionUpdate enumerates the mutable fields of a transaction.
// A nil field leaves the current value untouched. Date carries the raw
// user-supplied string and is validated as an ISO date before any field
// is applied, so a bad date never results in a partial update.
type TransactionUpdate struct {
	Amount   *decimal.Decimal
	Kind     *TransactionKind
	Category *string
	Date     *string
	Note     *string
	Payee    *string
}

// IsEmpty returns true if no field is set.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Amount == nil && u.Kind == nil && u.Category == nil &&
		u.Date == nil && u.Note == nil && u.Payee == nil
}

// CategoryUpdate enumerates the mutable fields of a category.
type CategoryUpdate struct {
	Name *string
	Icon *string
	Kind *TransactionKind
}

// IsEmpty returns true if no field is set.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Icon == nil && u.Kind == nil
}
