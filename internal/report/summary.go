package report

import (
	"time"

	"centavo/internal/models"
)

// Summary is the full dashboard payload for one user and window, derived
// entirely from collections already loaded in memory.
type Summary struct {
	Range           Range           `json:"range"`
	TotalIncome     int64           `json:"total_income"`
	TotalExpenses   int64           `json:"total_expenses"`
	AverageExpense  int64           `json:"average_expense"`
	Balance         int64           `json:"balance"`
	TotalPaidBills  int64           `json:"total_paid_bills"`
	AdjustedBalance int64           `json:"adjusted_balance"`
	SavingsRate     float64         `json:"savings_rate"`
	ExpenseTrend    float64         `json:"expense_trend"`
	IncomeTrend     float64         `json:"income_trend"`
	Breakdown       []CategoryShare `json:"breakdown"`
	UpcomingBills   []UpcomingBill  `json:"upcoming_bills"`
	RecentActivity  []ActivityItem  `json:"recent_activity"`
}

// Summarize computes the dashboard summary for the given window. Paid bills
// are windowed by due date the same way income and expenses are windowed by
// occurrence, so the adjusted balance never mixes all-time bills into a
// windowed balance. Trends always compare the current calendar month against
// the previous one, whatever window is selected.
func Summarize(
	expenses []models.Expense,
	incomes []models.Income,
	bills []models.Bill,
	r Range,
	now time.Time,
) Summary {
	winExpenses := FilterByRange(expenses, r, now)
	winIncomes := FilterByRange(incomes, r, now)
	winBills := FilterByRange(bills, r, now)

	totalIncome := Total(winIncomes)
	totalExpenses := Total(winExpenses)
	paidBills := PaidTotal(winBills)

	balance := totalIncome - totalExpenses
	adjusted := balance - paidBills

	var savingsRate float64
	if totalIncome > 0 {
		savingsRate = round1(float64(adjusted) / float64(totalIncome) * 100)
	}

	prevStart, prevEnd := PreviousMonthWindow(now)
	curExpenses := Total(FilterByRange(expenses, RangeMonth, now))
	prevExpenses := Total(FilterBetween(expenses, prevStart, prevEnd))
	curIncome := Total(FilterByRange(incomes, RangeMonth, now))
	prevIncome := Total(FilterBetween(incomes, prevStart, prevEnd))

	return Summary{
		Range:           r,
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		AverageExpense:  Average(winExpenses),
		Balance:         balance,
		TotalPaidBills:  paidBills,
		AdjustedBalance: adjusted,
		SavingsRate:     savingsRate,
		ExpenseTrend:    Trend(curExpenses, prevExpenses),
		IncomeTrend:     Trend(curIncome, prevIncome),
		Breakdown:       CategoryBreakdown(winExpenses),
		UpcomingBills:   UpcomingBills(bills, now),
		RecentActivity:  RecentActivity(winExpenses, winIncomes),
	}
}
