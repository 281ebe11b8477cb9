// Package ledger implements the core bookkeeping operations: transaction and
// category CRUD with stable integer IDs, and the month-aware budget counter
// that tracks spending against a monthly goal.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tallybook/internal/budget"
	"tallybook/internal/dateutils"
	"tallybook/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Clock reports the current time. It is injected so that month-sensitive
// budget decisions stay deterministic in tests.
type Clock func() time.Time

// Draft carries the caller-supplied fields of a new transaction.
// The ledger assigns the ID.
type Draft struct {
	Amount   decimal.Decimal
	Kind     models.TransactionKind
	Category string
	Date     time.Time
	Note     string
	Payee    string
}

// Ledger is the authoritative collection of transactions, categories and the
// monthly budget. Every mutation is written through to the store before it
// returns.
type Ledger struct {
	store        Store
	clock        Clock
	transactions []models.Transaction
	categories   []models.Category
	tracker      *budget.Tracker
}

// Open loads all persisted state through the given store. A nil clock
// defaults to time.Now.
func Open(s Store, clock Clock) (*Ledger, error) {
	if clock == nil {
		clock = time.Now
	}

	txs, err := s.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	categories, err := s.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	b, err := s.LoadBudget()
	if err != nil {
		return nil, fmt.Errorf("loading budget: %w", err)
	}

	stored := models.Budget{}
	if b != nil {
		stored = *b
	}

	log.WithFields(logrus.Fields{
		"transactions": len(txs),
		"categories":   len(categories),
	}).Debug("Opened ledger")

	return &Ledger{
		store:        s,
		clock:        clock,
		transactions: txs,
		categories:   categories,
		tracker:      budget.NewTracker(stored),
	}, nil
}

// AddTransaction validates the draft, assigns the next free ID and persists
// the grown list. Expenses dated in the current month are added to the budget
// spending counter; records for other months leave it untouched.
func (l *Ledger) AddTransaction(draft Draft) (models.Transaction, error) {
	if !draft.Kind.Valid() {
		return models.Transaction{}, fmt.Errorf("unknown transaction kind %q (want income or expense)", draft.Kind)
	}
	if draft.Amount.IsNegative() {
		return models.Transaction{}, fmt.Errorf("amount must not be negative, got %s", draft.Amount)
	}

	tx := models.Transaction{
		ID:       l.nextTransactionID(),
		Amount:   draft.Amount,
		Kind:     draft.Kind,
		Category: draft.Category,
		Date:     draft.Date,
		Note:     draft.Note,
		Payee:    draft.Payee,
	}
	l.transactions = append(l.transactions, tx)
	if err := l.store.SaveTransactions(l.transactions); err != nil {
		return models.Transaction{}, fmt.Errorf("saving transactions: %w", err)
	}

	if tx.IsExpense() && dateutils.SameMonth(tx.Date, l.clock()) {
		l.tracker.AddSpending(tx.Amount)
		if err := l.store.SaveBudget(l.tracker.Budget()); err != nil {
			return models.Transaction{}, fmt.Errorf("saving budget: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"id":     tx.ID,
		"kind":   tx.Kind,
		"amount": tx.Amount.String(),
	}).Debug("Added transaction")
	return tx, nil
}

// UpdateTransaction applies the non-nil fields of update to the transaction
// with the given ID. It reports false when the ID is unknown or the supplied
// date is not a valid YYYY-MM-DD string; in both cases nothing is changed.
// The budget counter is only moved by create and delete, never by update.
func (l *Ledger) UpdateTransaction(id int, update models.TransactionUpdate) (bool, error) {
	idx := l.findTransaction(id)
	if idx < 0 {
		return false, nil
	}

	var parsedDate *time.Time
	if update.Date != nil {
		d, err := dateutils.ParseISO(*update.Date)
		if err != nil {
			log.WithField("date", *update.Date).Debug("Rejected transaction update with invalid date")
			return false, nil
		}
		parsedDate = &d
	}

	tx := &l.transactions[idx]
	if update.Amount != nil {
		tx.Amount = *update.Amount
	}
	if update.Kind != nil {
		tx.Kind = *update.Kind
	}
	if update.Category != nil {
		tx.Category = *update.Category
	}
	if parsedDate != nil {
		tx.Date = *parsedDate
	}
	if update.Note != nil {
		tx.Note = *update.Note
	}
	if update.Payee != nil {
		tx.Payee = *update.Payee
	}

	if err := l.store.SaveTransactions(l.transactions); err != nil {
		return false, fmt.Errorf("saving transactions: %w", err)
	}
	return true, nil
}

// DeleteTransaction removes the transaction with the given ID and reports
// whether it existed. Deleting an expense reduces the budget spending counter
// regardless of the record's month; the counter never drops below zero.
func (l *Ledger) DeleteTransaction(id int) (bool, error) {
	idx := l.findTransaction(id)
	if idx < 0 {
		return false, nil
	}
	tx := l.transactions[idx]

	if tx.IsExpense() {
		l.tracker.ReduceSpending(tx.Amount)
		if err := l.store.SaveBudget(l.tracker.Budget()); err != nil {
			return false, fmt.Errorf("saving budget: %w", err)
		}
	}

	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	if err := l.store.SaveTransactions(l.transactions); err != nil {
		return false, fmt.Errorf("saving transactions: %w", err)
	}

	log.WithField("id", id).Debug("Deleted transaction")
	return true, nil
}

// Transaction returns the transaction with the given ID and whether it exists.
func (l *Ledger) Transaction(id int) (models.Transaction, bool) {
	idx := l.findTransaction(id)
	if idx < 0 {
		return models.Transaction{}, false
	}
	return l.transactions[idx], true
}

// Transactions returns a copy of all transactions in insertion order.
func (l *Ledger) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// AddCategory validates the kind, assigns the next free ID and persists the
// grown list.
func (l *Ledger) AddCategory(name, icon string, kind models.TransactionKind) (models.Category, error) {
	if !kind.Valid() {
		return models.Category{}, fmt.Errorf("unknown transaction kind %q (want income or expense)", kind)
	}

	category := models.Category{
		ID:   l.nextCategoryID(),
		Name: name,
		Icon: icon,
		Kind: kind,
	}
	l.categories = append(l.categories, category)
	if err := l.store.SaveCategories(l.categories); err != nil {
		return models.Category{}, fmt.Errorf("saving categories: %w", err)
	}

	log.WithFields(logrus.Fields{
		"id":   category.ID,
		"name": category.Name,
	}).Debug("Added category")
	return category, nil
}

// UpdateCategory applies the non-nil fields of update to the category with
// the given ID and reports whether it existed.
func (l *Ledger) UpdateCategory(id int, update models.CategoryUpdate) (bool, error) {
	idx := l.findCategory(id)
	if idx < 0 {
		return false, nil
	}

	category := &l.categories[idx]
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Icon != nil {
		category.Icon = *update.Icon
	}
	if update.Kind != nil {
		category.Kind = *update.Kind
	}

	if err := l.store.SaveCategories(l.categories); err != nil {
		return false, fmt.Errorf("saving categories: %w", err)
	}
	return true, nil
}

// DeleteCategory removes the category with the given ID and reports whether
// it existed. Transactions referencing the category keep their category name.
func (l *Ledger) DeleteCategory(id int) (bool, error) {
	idx := l.findCategory(id)
	if idx < 0 {
		return false, nil
	}

	l.categories = append(l.categories[:idx], l.categories[idx+1:]...)
	if err := l.store.SaveCategories(l.categories); err != nil {
		return false, fmt.Errorf("saving categories: %w", err)
	}
	return true, nil
}

// Categories returns a copy of all categories in insertion order.
func (l *Ledger) Categories() []models.Category {
	out := make([]models.Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// SetBudgetGoal updates the monthly goal and persists the budget. When the
// stored month differs from the current one the spending counter is reset
// and the budget is stamped with the current month.
func (l *Ledger) SetBudgetGoal(amount decimal.Decimal) error {
	l.tracker.SetGoal(amount, l.clock())
	if err := l.store.SaveBudget(l.tracker.Budget()); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	log.WithFields(logrus.Fields{
		"goal":  amount.String(),
		"month": l.tracker.Budget().Month,
	}).Debug("Set budget goal")
	return nil
}

// BudgetStatus classifies current spending against the monthly goal.
func (l *Ledger) BudgetStatus() (budget.Level, string) {
	return l.tracker.Status()
}

// Budget returns the stored budget.
func (l *Ledger) Budget() models.Budget {
	return l.tracker.Budget()
}

func (l *Ledger) findTransaction(id int) int {
	for i, tx := range l.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) findCategory(id int) int {
	for i, category := range l.categories {
		if category.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) nextTransactionID() int {
	next := 1
	for _, tx := range l.transactions {
		if tx.ID >= next {
			next = tx.ID + 1
		}
	}
	return next
}

func (l *Ledger) nextCategoryID() int {
	next := 1
	for _, category := range l.categories {
		if category.ID >= next {
			next = category.ID + 1
		}
	}
	return next
}
