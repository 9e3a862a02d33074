package report

import (
	"sort"
	"time"

	"centavo/internal/models"
)

// recentActivityLimit caps the merged feed at the five newest records.
const recentActivityLimit = 5

// ActivityType tags a feed item as an expense or an income record.
type ActivityType string

const (
	ActivityExpense ActivityType = "expense"
	ActivityIncome  ActivityType = "income"
)

// ActivityItem is one row of the recent-activity feed. Amount is signed:
// income is positive, expenses are shown as deductions.
type ActivityItem struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Label       string       `json:"label"`
	Amount      int64        `json:"amount"`
	Description string       `json:"description"`
	OccurredAt  time.Time    `json:"occurred_at"`
}

// RecentActivity merges expenses and income into a single feed sorted by
// newest first, truncated to the five most recent records. Callers pass
// collections already filtered to the active window.
func RecentActivity(expenses []models.Expense, incomes []models.Income) []ActivityItem {
	items := make([]ActivityItem, 0, len(expenses)+len(incomes))
	for _, e := range expenses {
		items = append(items, ActivityItem{
			ID:          e.ID,
			Type:        ActivityExpense,
			Label:       e.Category,
			Amount:      -e.Amount,
			Description: e.Description,
			OccurredAt:  e.OccurredAt,
		})
	}
	for _, i := range incomes {
		items = append(items, ActivityItem{
			ID:          i.ID,
			Type:        ActivityIncome,
			Label:       i.Type,
			Amount:      i.Amount,
			Description: i.Description,
			OccurredAt:  i.OccurredAt,
		})
	}

	sort.Slice(items, func(a, b int) bool {
		return items[a].OccurredAt.After(items[b].OccurredAt)
	})

	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	return items
}
