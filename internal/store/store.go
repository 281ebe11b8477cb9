// Package store provides functionality for persisting ledger data to disk.
//
// All data lives as JSON files inside a single data directory. Saves are
// synchronous whole-file rewrites; loads on a missing file return empty
// values so a fresh install starts from a clean slate without errors.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tallybook/internal/dateutils"
	"tallybook/internal/fileutils"
	"tallybook/internal/models"
)

var log = logrus.New()

func init() {
	// On-disk amounts are bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// File names inside the data directory.
const (
	TransactionsFile  = "transactions.json"
	CategoriesFile    = "categories.json"
	BudgetFile        = "budget.json"
	SearchHistoryFile = "search_history.json"
)

// FileStore persists transactions, categories and the budget as JSON files
// inside a single directory.
type FileStore struct {
	Dir string
}

// NewFileStore creates a store rooted at dir. The directory itself is
// created lazily on the first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// transactionDTO pins the on-disk shape of a transaction independently of
// the domain struct: the date is an ISO string, the amount a JSON number.
type transactionDTO struct {
	ID       int             `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     string          `json:"kind"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
	Payee    string          `json:"payee"`
}

type categoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Kind string `json:"kind"`
}

type budgetDTO struct {
	Goal  decimal.Decimal `json:"monthly_goal"`
	Spent decimal.Decimal `json:"current_spending"`
	Month string          `json:"month"`
}

func (s *FileStore) transactionsPath() string {
	return filepath.Join(s.Dir, TransactionsFile)
}

func (s *FileStore) categoriesPath() string {
	return filepath.Join(s.Dir, CategoriesFile)
}

func (s *FileStore) budgetPath() string {
	return filepath.Join(s.Dir, BudgetFile)
}

func (s *FileStore) searchHistoryPath() string {
	return filepath.Join(s.Dir, SearchHistoryFile)
}

// LoadTransactions reads the transaction list from disk.
// A missing file yields an empty slice, not an error.
func (s *FileStore) LoadTransactions() ([]models.Transaction, error) {
	data, err := os.ReadFile(s.transactionsPath())
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Transactions file not found: %s", s.transactionsPath())
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error reading transactions file: %w", err)
	}

	var dtos []transactionDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("error parsing transactions file: %w", err)
	}

	txs := make([]models.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		date, err := dateutils.ParseISO(dto.Date)
		if err != nil {
			return nil, fmt.Errorf("error parsing transactions file: %w", err)
		}
		txs = append(txs, models.Transaction{
			ID:       dto.ID,
			Amount:   dto.Amount,
			Kind:     models.TransactionKind(dto.Kind),
			Category: dto.Category,
			Date:     date,
			Note:     dto.Note,
			Payee:    dto.Payee,
		})
	}

	log.Debugf("Loaded %d transactions from %s", len(txs), s.transactionsPath())
	return txs, nil
}

// SaveTransactions rewrites the transaction file in full.
func (s *FileStore) SaveTransactions(txs []models.Transaction) error {
	dtos := make([]transactionDTO, 0, len(txs))
	for _, tx := range txs {
		dtos = append(dtos, transactionDTO{
			ID:       tx.ID,
			Amount:   tx.Amount,
			Kind:     string(tx.Kind),
			Category: tx.Category,
			Date:     dateutils.ToISODate(tx.Date),
			Note:     tx.Note,
			Payee:    tx.Payee,
		})
	}
	return s.writeJSON(s.transactionsPath(), dtos)
}

// LoadCategories reads the category list from disk.
// A missing file yields an empty slice, not an error.
func (s *FileStore) LoadCategories() ([]models.Category, error) {
	data, err := os.ReadFile(s.categoriesPath())
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Categories file not found: %s", s.categoriesPath())
			return []models.Category{}, nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var dtos []categoryDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	categories := make([]models.Category, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, models.Category{
			ID:   dto.ID,
			Name: dto.Name,
			Icon: dto.Icon,
			Kind: models.TransactionKind(dto.Kind),
		})
	}

	log.Debugf("Loaded %d categories from %s", len(categories), s.categoriesPath())
	return categories, nil
}

// SaveCategories rewrites the category file in full.
func (s *FileStore) SaveCategories(categories []models.Category) error {
	dtos := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, categoryDTO{
			ID:   c.ID,
			Name: c.Name,
			Icon: c.Icon,
			Kind: string(c.Kind),
		})
	}
	return s.writeJSON(s.categoriesPath(), dtos)
}

// LoadBudget reads the budget from disk. A missing file yields (nil, nil):
// the caller decides what a fresh budget looks like.
func (s *FileStore) LoadBudget() (*models.Budget, error) {
	data, err := os.ReadFile(s.budgetPath())
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Budget file not found: %s", s.budgetPath())
			return nil, nil
		}
		return nil, fmt.Errorf("error reading budget file: %w", err)
	}

	var dto budgetDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("error parsing budget file: %w", err)
	}

	return &models.Budget{
		Goal:  dto.Goal,
		Spent: dto.Spent,
		Month: dto.Month,
	}, nil
}

// SaveBudget rewrites the budget file in full.
func (s *FileStore) SaveBudget(b models.Budget) error {
	return s.writeJSON(s.budgetPath(), budgetDTO{
		Goal:  b.Goal,
		Spent: b.Spent,
		Month: b.Month,
	})
}

// LoadSearchHistory reads the recorded search descriptions from disk.
// A missing file yields an empty slice, not an error.
func (s *FileStore) LoadSearchHistory() ([]string, error) {
	data, err := os.ReadFile(s.searchHistoryPath())
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Search history file not found: %s", s.searchHistoryPath())
			return []string{}, nil
		}
		return nil, fmt.Errorf("error reading search history file: %w", err)
	}

	var history []string
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("error parsing search history file: %w", err)
	}
	return history, nil
}

// SaveSearchHistory rewrites the search history file in full.
func (s *FileStore) SaveSearchHistory(history []string) error {
	if history == nil {
		history = []string{}
	}
	return s.writeJSON(s.searchHistoryPath(), history)
}

// writeJSON marshals v with indentation and rewrites path in full, creating
// the data directory if needed.
func (s *FileStore) writeJSON(path string, v interface{}) error {
	if err := fileutils.EnsureDirectoryExists(s.Dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}

	log.Debugf("Saved %s", path)
	return nil
}
