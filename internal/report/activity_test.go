package report

import (
	"testing"
	"time"

	"centavo/internal/models"
)

func TestRecentActivity(t *testing.T) {
	base := date(2025, time.June, 10)

	t.Run("merges_and_truncates_to_five", func(t *testing.T) {
		expenses := []models.Expense{
			{Base: models.Base{ID: "e1"}, Category: "Grocery", Amount: 100, OccurredAt: base.AddDate(0, 0, 1)},
			{Base: models.Base{ID: "e2"}, Category: "Snacks", Amount: 200, OccurredAt: base.AddDate(0, 0, 3)},
			{Base: models.Base{ID: "e3"}, Category: "Transport", Amount: 300, OccurredAt: base.AddDate(0, 0, 5)},
		}
		incomes := []models.Income{
			{Base: models.Base{ID: "i1"}, Type: "Salary", Amount: 1000, OccurredAt: base.AddDate(0, 0, 2)},
			{Base: models.Base{ID: "i2"}, Type: "Gift", Amount: 2000, OccurredAt: base.AddDate(0, 0, 4)},
			{Base: models.Base{ID: "i3"}, Type: "Freelance", Amount: 3000, OccurredAt: base},
		}

		got := RecentActivity(expenses, incomes)
		if len(got) != 5 {
			t.Fatalf("expected 5 items, got %d", len(got))
		}

		// Newest first; the oldest record (i3 at base) is truncated.
		for i := 1; i < len(got); i++ {
			if got[i].OccurredAt.After(got[i-1].OccurredAt) {
				t.Fatalf("items not in descending order at index %d", i)
			}
		}
		for _, item := range got {
			if item.ID == "i3" {
				t.Error("oldest record should have been truncated")
			}
		}
	})

	t.Run("sign_convention", func(t *testing.T) {
		got := RecentActivity(
			[]models.Expense{{Base: models.Base{ID: "e"}, Amount: 500, OccurredAt: base}},
			[]models.Income{{Base: models.Base{ID: "i"}, Amount: 700, OccurredAt: base.Add(time.Hour)}},
		)
		if len(got) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got))
		}
		if got[0].Type != ActivityIncome || got[0].Amount != 700 {
			t.Errorf("income item = %+v, want positive 700", got[0])
		}
		if got[1].Type != ActivityExpense || got[1].Amount != -500 {
			t.Errorf("expense item = %+v, want -500", got[1])
		}
	})

	t.Run("empty_inputs", func(t *testing.T) {
		if got := RecentActivity(nil, nil); len(got) != 0 {
			t.Errorf("expected empty feed, got %d items", len(got))
		}
	})
}
