package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallybook/internal/budget"
	"tallybook/internal/models"
	"tallybook/internal/store"
)

var testNow = time.Date(2025, 12, 23, 10, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func openTestLedger(t *testing.T, mock *store.Mock) *Ledger {
	t.Helper()
	l, err := Open(mock, testClock)
	require.NoError(t, err)
	return l
}

func expenseDraft(amount float64, date time.Time) Draft {
	return Draft{
		Amount:   decimal.NewFromFloat(amount),
		Kind:     models.KindExpense,
		Category: "Food",
		Date:     date,
		Payee:    "Migros",
	}
}

func TestAddTransactionAssignsSequentialIDs(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})

	first, err := l.AddTransaction(expenseDraft(12.50, testNow))
	require.NoError(t, err)
	second, err := l.AddTransaction(expenseDraft(30, testNow))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestAddTransactionIDAfterDeletion(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})

	_, err := l.AddTransaction(expenseDraft(10, testNow))
	require.NoError(t, err)
	second, err := l.AddTransaction(expenseDraft(20, testNow))
	require.NoError(t, err)

	ok, err := l.DeleteTransaction(second.ID)
	require.NoError(t, err)
	require.True(t, ok)

	third, err := l.AddTransaction(expenseDraft(30, testNow))
	require.NoError(t, err)
	assert.Equal(t, 2, third.ID, "next ID should follow the highest surviving ID")
}

func TestAddTransactionValidation(t *testing.T) {
	testCases := []struct {
		name  string
		draft Draft
	}{
		{
			name: "unknown kind",
			draft: Draft{
				Amount: decimal.NewFromInt(10),
				Kind:   models.TransactionKind("transfer"),
				Date:   testNow,
			},
		},
		{
			name: "negative amount",
			draft: Draft{
				Amount: decimal.NewFromInt(-5),
				Kind:   models.KindExpense,
				Date:   testNow,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &store.Mock{}
			l := openTestLedger(t, mock)

			_, err := l.AddTransaction(tc.draft)
			assert.Error(t, err)
			assert.Empty(t, l.Transactions())
			assert.Equal(t, 0, mock.SaveTransactionsCalls)
		})
	}
}

func TestAddTransactionUpdatesBudgetForCurrentMonthExpense(t *testing.T) {
	mock := &store.Mock{
		Budget: &models.Budget{Goal: decimal.NewFromInt(1000), Month: "2025-12"},
	}
	l := openTestLedger(t, mock)

	_, err := l.AddTransaction(expenseDraft(45.50, testNow))
	require.NoError(t, err)

	assert.True(t, l.Budget().Spent.Equal(decimal.NewFromFloat(45.50)))
	assert.Equal(t, 1, mock.SaveBudgetCalls)
}

func TestAddTransactionLeavesBudgetAlone(t *testing.T) {
	testCases := []struct {
		name  string
		draft Draft
	}{
		{
			name: "income in current month",
			draft: Draft{
				Amount: decimal.NewFromInt(5000),
				Kind:   models.KindIncome,
				Date:   testNow,
			},
		},
		{
			name:  "expense in another month",
			draft: expenseDraft(45.50, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &store.Mock{
				Budget: &models.Budget{Goal: decimal.NewFromInt(1000), Month: "2025-12"},
			}
			l := openTestLedger(t, mock)

			_, err := l.AddTransaction(tc.draft)
			require.NoError(t, err)

			assert.True(t, l.Budget().Spent.IsZero())
			assert.Equal(t, 0, mock.SaveBudgetCalls)
		})
	}
}

func TestUpdateTransaction(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})
	tx, err := l.AddTransaction(expenseDraft(50, testNow))
	require.NoError(t, err)

	newAmount := decimal.NewFromInt(75)
	newNote := "weekly groceries"
	newDate := "2025-12-10"
	ok, err := l.UpdateTransaction(tx.ID, models.TransactionUpdate{
		Amount: &newAmount,
		Note:   &newNote,
		Date:   &newDate,
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, found := l.Transaction(tx.ID)
	require.True(t, found)
	assert.True(t, got.Amount.Equal(newAmount))
	assert.Equal(t, "weekly groceries", got.Note)
	assert.Equal(t, time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, "Migros", got.Payee, "fields without an update value stay untouched")
}

func TestUpdateTransactionUnknownID(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})

	note := "ghost"
	ok, err := l.UpdateTransaction(999, models.TransactionUpdate{Note: &note})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateTransactionInvalidDate(t *testing.T) {
	mock := &store.Mock{}
	l := openTestLedger(t, mock)
	tx, err := l.AddTransaction(expenseDraft(50, testNow))
	require.NoError(t, err)
	savesBefore := mock.SaveTransactionsCalls

	newAmount := decimal.NewFromInt(999)
	badDate := "2025-13-45"
	ok, err := l.UpdateTransaction(tx.ID, models.TransactionUpdate{
		Amount: &newAmount,
		Date:   &badDate,
	})
	assert.NoError(t, err)
	assert.False(t, ok)

	got, found := l.Transaction(tx.ID)
	require.True(t, found)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(50)), "no field may be applied when the date is invalid")
	assert.Equal(t, savesBefore, mock.SaveTransactionsCalls)
}

func TestUpdateTransactionNeverTouchesBudget(t *testing.T) {
	mock := &store.Mock{
		Budget: &models.Budget{Goal: decimal.NewFromInt(1000), Month: "2025-12"},
	}
	l := openTestLedger(t, mock)
	tx, err := l.AddTransaction(expenseDraft(50, testNow))
	require.NoError(t, err)
	require.Equal(t, 1, mock.SaveBudgetCalls)

	newAmount := decimal.NewFromInt(500)
	ok, err := l.UpdateTransaction(tx.ID, models.TransactionUpdate{Amount: &newAmount})
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, l.Budget().Spent.Equal(decimal.NewFromInt(50)), "spending counter must not follow amount edits")
	assert.Equal(t, 1, mock.SaveBudgetCalls)
}

func TestDeleteTransactionReducesSpending(t *testing.T) {
	mock := &store.Mock{
		Budget: &models.Budget{Goal: decimal.NewFromInt(1000), Month: "2025-12"},
	}
	l := openTestLedger(t, mock)
	tx, err := l.AddTransaction(expenseDraft(45.50, testNow))
	require.NoError(t, err)

	ok, err := l.DeleteTransaction(tx.ID)
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, l.Budget().Spent.IsZero())
	assert.Empty(t, l.Transactions())
}

func TestDeleteTransactionFloorsSpendingAtZero(t *testing.T) {
	mock := &store.Mock{
		Transactions: []models.Transaction{
			{
				ID:     1,
				Amount: decimal.NewFromInt(100),
				Kind:   models.KindExpense,
				Date:   time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
			},
		},
		Budget: &models.Budget{
			Goal:  decimal.NewFromInt(1000),
			Spent: decimal.NewFromInt(10),
			Month: "2025-12",
		},
	}
	l := openTestLedger(t, mock)

	ok, err := l.DeleteTransaction(1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, l.Budget().Spent.IsZero(), "deleting an expense from any month floors the counter at zero")
}

func TestDeleteTransactionIncomeLeavesBudget(t *testing.T) {
	mock := &store.Mock{
		Budget: &models.Budget{
			Goal:  decimal.NewFromInt(1000),
			Spent: decimal.NewFromInt(200),
			Month: "2025-12",
		},
	}
	l := openTestLedger(t, mock)
	tx, err := l.AddTransaction(Draft{
		Amount: decimal.NewFromInt(5000),
		Kind:   models.KindIncome,
		Date:   testNow,
	})
	require.NoError(t, err)

	ok, err := l.DeleteTransaction(tx.ID)
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, l.Budget().Spent.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 0, mock.SaveBudgetCalls)
}

func TestDeleteTransactionUnknownID(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})

	ok, err := l.DeleteTransaction(42)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestTransactionLookup(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})
	tx, err := l.AddTransaction(expenseDraft(50, testNow))
	require.NoError(t, err)

	got, ok := l.Transaction(tx.ID)
	assert.True(t, ok)
	assert.Equal(t, tx.ID, got.ID)

	_, ok = l.Transaction(999)
	assert.False(t, ok)
}

func TestTransactionsReturnsCopy(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})
	_, err := l.AddTransaction(expenseDraft(50, testNow))
	require.NoError(t, err)

	txs := l.Transactions()
	txs[0].Note = "tampered"

	got, ok := l.Transaction(txs[0].ID)
	require.True(t, ok)
	assert.Empty(t, got.Note)
}

func TestCategoryLifecycle(t *testing.T) {
	mock := &store.Mock{}
	l := openTestLedger(t, mock)

	category, err := l.AddCategory("Food", "🍔", models.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, 1, category.ID)
	assert.Equal(t, 1, mock.SaveCategoriesCalls)

	newName := "Groceries"
	ok, err := l.UpdateCategory(category.ID, models.CategoryUpdate{Name: &newName})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Groceries", l.Categories()[0].Name)

	ok, err = l.DeleteCategory(category.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, l.Categories())
}

func TestDeleteCategoryKeepsTransactions(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})

	category, err := l.AddCategory("Food", "🍔", models.KindExpense)
	require.NoError(t, err)
	tx, err := l.AddTransaction(expenseDraft(50, testNow))
	require.NoError(t, err)

	ok, err := l.DeleteCategory(category.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, found := l.Transaction(tx.ID)
	require.True(t, found)
	assert.Equal(t, "Food", got.Category, "transactions keep their category name after the category is deleted")
}

func TestUpdateCategoryUnknownID(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})

	name := "Ghost"
	ok, err := l.UpdateCategory(7, models.CategoryUpdate{Name: &name})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAddCategoryInvalidKind(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})

	_, err := l.AddCategory("Weird", "❓", models.TransactionKind("transfer"))
	assert.Error(t, err)
	assert.Empty(t, l.Categories())
}

func TestSetBudgetGoalRollsOverOnNewMonth(t *testing.T) {
	mock := &store.Mock{
		Budget: &models.Budget{
			Goal:  decimal.NewFromInt(800),
			Spent: decimal.NewFromInt(400),
			Month: "2025-11",
		},
	}
	l := openTestLedger(t, mock)

	require.NoError(t, l.SetBudgetGoal(decimal.NewFromInt(1000)))

	b := l.Budget()
	assert.True(t, b.Goal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.Spent.IsZero())
	assert.Equal(t, "2025-12", b.Month)
	assert.Equal(t, 1, mock.SaveBudgetCalls)
}

func TestSetBudgetGoalKeepsSpendingInSameMonth(t *testing.T) {
	mock := &store.Mock{
		Budget: &models.Budget{
			Goal:  decimal.NewFromInt(800),
			Spent: decimal.NewFromInt(400),
			Month: "2025-12",
		},
	}
	l := openTestLedger(t, mock)

	require.NoError(t, l.SetBudgetGoal(decimal.NewFromInt(1000)))

	b := l.Budget()
	assert.True(t, b.Goal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.Spent.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, "2025-12", b.Month)
}

func TestBudgetStatusPassthrough(t *testing.T) {
	mock := &store.Mock{
		Budget: &models.Budget{
			Goal:  decimal.NewFromInt(1000),
			Spent: decimal.NewFromInt(900),
			Month: "2025-12",
		},
	}
	l := openTestLedger(t, mock)

	level, _ := l.BudgetStatus()
	assert.Equal(t, budget.LevelWarning, level)
}

func TestBudgetStatusWithoutStoredBudget(t *testing.T) {
	l := openTestLedger(t, &store.Mock{})

	level, _ := l.BudgetStatus()
	assert.Equal(t, budget.LevelNone, level)
}

func TestOpenPropagatesStoreErrors(t *testing.T) {
	testCases := []struct {
		name string
		mock *store.Mock
	}{
		{name: "transactions", mock: &store.Mock{LoadTransactionsError: assert.AnError}},
		{name: "categories", mock: &store.Mock{LoadCategoriesError: assert.AnError}},
		{name: "budget", mock: &store.Mock{LoadBudgetError: assert.AnError}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Open(tc.mock, testClock)
			assert.Error(t, err)
		})
	}
}

func TestAddTransactionSaveError(t *testing.T) {
	mock := &store.Mock{SaveTransactionsError: assert.AnError}
	l := openTestLedger(t, mock)

	_, err := l.AddTransaction(expenseDraft(50, testNow))
	assert.Error(t, err)
}
