package store

import (
	"tallybook/internal/models"
)

// Mock is an in-memory store implementation for testing.
type Mock struct {
	Transactions  []models.Transaction
	Categories    []models.Category
	Budget        *models.Budget
	SearchHistory []string

	// Error flags for testing error conditions
	LoadTransactionsError  error
	LoadCategoriesError    error
	LoadBudgetError        error
	LoadSearchHistoryError error
	SaveTransactionsError  error
	SaveCategoriesError    error
	SaveBudgetError        error
	SaveSearchHistoryError error

	// Call counters for asserting that mutations were persisted
	SaveTransactionsCalls  int
	SaveCategoriesCalls    int
	SaveBudgetCalls        int
	SaveSearchHistoryCalls int
}

// LoadTransactions returns the mock transactions.
func (m *Mock) LoadTransactions() ([]models.Transaction, error) {
	if m.LoadTransactionsError != nil {
		return nil, m.LoadTransactionsError
	}
	if m.Transactions == nil {
		return []models.Transaction{}, nil
	}
	return m.Transactions, nil
}

// SaveTransactions replaces the mock transactions.
func (m *Mock) SaveTransactions(txs []models.Transaction) error {
	m.SaveTransactionsCalls++
	if m.SaveTransactionsError != nil {
		return m.SaveTransactionsError
	}
	m.Transactions = make([]models.Transaction, len(txs))
	copy(m.Transactions, txs)
	return nil
}

// LoadCategories returns the mock categories.
func (m *Mock) LoadCategories() ([]models.Category, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	if m.Categories == nil {
		return []models.Category{}, nil
	}
	return m.Categories, nil
}

// SaveCategories replaces the mock categories.
func (m *Mock) SaveCategories(categories []models.Category) error {
	m.SaveCategoriesCalls++
	if m.SaveCategoriesError != nil {
		return m.SaveCategoriesError
	}
	m.Categories = make([]models.Category, len(categories))
	copy(m.Categories, categories)
	return nil
}

// LoadBudget returns the mock budget, nil when none is set.
func (m *Mock) LoadBudget() (*models.Budget, error) {
	if m.LoadBudgetError != nil {
		return nil, m.LoadBudgetError
	}
	return m.Budget, nil
}

// SaveBudget replaces the mock budget.
func (m *Mock) SaveBudget(b models.Budget) error {
	m.SaveBudgetCalls++
	if m.SaveBudgetError != nil {
		return m.SaveBudgetError
	}
	saved := b
	m.Budget = &saved
	return nil
}

// LoadSearchHistory returns the mock search history.
func (m *Mock) LoadSearchHistory() ([]string, error) {
	if m.LoadSearchHistoryError != nil {
		return nil, m.LoadSearchHistoryError
	}
	if m.SearchHistory == nil {
		return []string{}, nil
	}
	return m.SearchHistory, nil
}

// SaveSearchHistory replaces the mock search history.
func (m *Mock) SaveSearchHistory(history []string) error {
	m.SaveSearchHistoryCalls++
	if m.SaveSearchHistoryError != nil {
		return m.SaveSearchHistoryError
	}
	m.SearchHistory = make([]string, len(history))
	copy(m.SearchHistory, history)
	return nil
}
