package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tallybook/internal/models"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func expense(amount float64, category, payee string, d int) models.Transaction {
	return models.Transaction{
		Amount:   decimal.NewFromFloat(amount),
		Kind:     models.KindExpense,
		Category: category,
		Payee:    payee,
		Date:     day(d),
	}
}

func income(amount float64, d int) models.Transaction {
	return models.Transaction{
		Amount:   decimal.NewFromFloat(amount),
		Kind:     models.KindIncome,
		Category: "Salary",
		Payee:    "Employer",
		Date:     day(d),
	}
}

func TestReportNoTransactions(t *testing.T) {
	report := Report(nil)
	assert.Contains(t, report, "nothing to analyze")
}

func TestReportNoExpenses(t *testing.T) {
	report := Report([]models.Transaction{income(1500, 3)})
	assert.Contains(t, report, "spending habits cannot be analyzed")
}

func TestReportOverviewAndStructure(t *testing.T) {
	txs := []models.Transaction{
		expense(600, "Food", "Migros", 1),
		income(1500, 3),
		expense(200, "Transport", "SBB", 5),
		expense(200, "Leisure", "Cinema", 10),
	}

	report := Report(txs)

	assert.Contains(t, report, "1. Overview")
	assert.Contains(t, report, "- Total expenses: 1000.00")
	assert.Contains(t, report, "- Total income: 1500.00")
	assert.Contains(t, report, "- Net balance for the period: 500.00")
	assert.Contains(t, report, "- Period covered: 2025-01-01 to 2025-01-10 (10 days)")
	assert.Contains(t, report, "- Average daily spending: 100.00")

	assert.Contains(t, report, "2. Spending structure")
	assert.Contains(t, report, "- Food: 600.00 (60.0% of total spending)")
	assert.Contains(t, report, "- Transport: 200.00 (20.0% of total spending)")
	assert.Contains(t, report, "- Migros: 600.00")

	assert.Contains(t, report, "3. Habits and risks")
	assert.Contains(t, report, "rules of thumb")
}

func TestReportConcentrationTiers(t *testing.T) {
	testCases := []struct {
		name string
		txs  []models.Transaction
		want string
	}{
		{
			name: "high concentration",
			txs: []models.Transaction{
				expense(600, "Food", "Migros", 1),
				expense(400, "Transport", "SBB", 2),
			},
			want: "Spending is highly concentrated: Food accounts for more than half of all expenses.",
		},
		{
			name: "mild concentration",
			txs: []models.Transaction{
				expense(400, "Food", "Migros", 1),
				expense(350, "Transport", "SBB", 2),
				expense(250, "Leisure", "Cinema", 3),
			},
			want: "Food is the single largest spending category at about 40% of the total.",
		},
		{
			name: "balanced",
			txs: []models.Transaction{
				expense(125, "Food", "Migros", 1),
				expense(125, "Food", "Coop", 2),
				expense(125, "Transport", "SBB", 3),
				expense(125, "Transport", "TPG", 4),
				expense(125, "Leisure", "Cinema", 5),
				expense(125, "Leisure", "Pool", 6),
				expense(125, "Health", "Pharmacy", 7),
				expense(125, "Health", "Dentist", 8),
			},
			want: "Spending is spread fairly evenly across categories",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, Report(tc.txs), tc.want)
		})
	}
}

func TestReportBalanceCommentary(t *testing.T) {
	testCases := []struct {
		name string
		txs  []models.Transaction
		want string
	}{
		{
			name: "negative balance",
			txs: []models.Transaction{
				income(100, 1),
				expense(200, "Food", "Migros", 2),
			},
			want: "Expenses exceeded income in this period, leaving a negative balance.",
		},
		{
			name: "positive balance",
			txs: []models.Transaction{
				income(500, 1),
				expense(200, "Food", "Migros", 2),
			},
			want: "Income exceeded expenses in this period, which is a healthy position.",
		},
		{
			name: "no income",
			txs: []models.Transaction{
				expense(200, "Food", "Migros", 2),
			},
			want: "No income recorded yet, so the overall balance cannot be judged.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, Report(tc.txs), tc.want)
		})
	}
}

func TestReportLargeSingleOutlay(t *testing.T) {
	txs := []models.Transaction{
		expense(600, "Travel", "Airline", 1),
		expense(200, "Food", "Migros", 2),
		expense(200, "Transport", "SBB", 3),
	}

	report := Report(txs)
	assert.Contains(t, report, "- Largest single expense: 600.00 in Travel on 2025-01-01")
}

func TestReportFragmentedSpending(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 12; i++ {
		txs = append(txs, expense(5, "Food", "Kiosk", 1+i%3))
	}

	report := Report(txs)
	assert.Contains(t, report, "Many small purchases")
}

func TestReportFewLargePurchasesNotFragmented(t *testing.T) {
	txs := []models.Transaction{
		expense(500, "Rent", "Landlord", 1),
		expense(300, "Food", "Migros", 15),
	}

	report := Report(txs)
	assert.NotContains(t, report, "Many small purchases")
}

func TestReportMissingCategoryAndPayee(t *testing.T) {
	txs := []models.Transaction{
		{Amount: decimal.NewFromInt(50), Kind: models.KindExpense, Date: day(1)},
	}

	report := Report(txs)
	assert.Contains(t, report, "No category information recorded.")
	assert.Contains(t, report, "No payee information recorded.")
}

func TestReportTopCategoriesKeepsThree(t *testing.T) {
	txs := []models.Transaction{
		expense(400, "Food", "Migros", 1),
		expense(300, "Transport", "SBB", 2),
		expense(200, "Leisure", "Cinema", 3),
		expense(100, "Health", "Pharmacy", 4),
	}

	report := Report(txs)
	assert.Contains(t, report, "- Food: 400.00")
	assert.Contains(t, report, "- Transport: 300.00")
	assert.Contains(t, report, "- Leisure: 200.00")
	assert.NotContains(t, report, "- Health: 100.00")
}

func TestReportSingleDaySpansOneDay(t *testing.T) {
	txs := []models.Transaction{expense(80, "Food", "Migros", 7)}

	report := Report(txs)
	assert.Contains(t, report, "- Period covered: 2025-01-07 to 2025-01-07 (1 days)")
	assert.Contains(t, report, "- Average daily spending: 80.00")
}

func TestReportSectionsInOrder(t *testing.T) {
	txs := []models.Transaction{
		expense(600, "Food", "Migros", 1),
		income(1500, 3),
	}

	report := Report(txs)
	overview := strings.Index(report, "1. Overview")
	structure := strings.Index(report, "2. Spending structure")
	habits := strings.Index(report, "3. Habits and risks")
	assert.True(t, overview >= 0 && overview < structure && structure < habits)
}
