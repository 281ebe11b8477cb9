package ledger

import "tallybook/internal/models"

// Store defines the interface for ledger data persistence.
// This allows for dependency injection and easier testing.
type Store interface {
	LoadTransactions() ([]models.Transaction, error)
	SaveTransactions(txs []models.Transaction) error
	LoadCategories() ([]models.Category, error)
	SaveCategories(categories []models.Category) error
	LoadBudget() (*models.Budget, error)
	SaveBudget(b models.Budget) error
}
