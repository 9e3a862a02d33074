package report

import (
	"math"
	"sort"

	"centavo/internal/models"
)

// Entry is any record with a timestamp and a monetary value in centavos.
type Entry interface {
	Dated
	Value() int64
}

// Total sums the amounts of the given records.
func Total[T Entry](records []T) int64 {
	var sum int64
	for _, r := range records {
		sum += r.Value()
	}
	return sum
}

// Average returns the mean amount in centavos, or 0 for an empty set.
func Average[T Entry](records []T) int64 {
	if len(records) == 0 {
		return 0
	}
	return Total(records) / int64(len(records))
}

// Trend returns the percentage change from previous to current, rounded to
// one decimal. A zero previous period yields 0, never infinity.
func Trend(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return round1(float64(current-previous) / float64(previous) * 100)
}

// topCategories caps the breakdown at the largest five groups.
const topCategories = 5

// CategoryShare is one group of the expense breakdown.
type CategoryShare struct {
	Category   string  `json:"category"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdown groups expenses by category, sums each group, and returns
// the top five groups in descending order with their share of total spending
// as a percentage rounded to one decimal. A zero total leaves every
// percentage at 0.
func CategoryBreakdown(expenses []models.Expense) []CategoryShare {
	sums := make(map[string]int64)
	for _, e := range expenses {
		sums[e.Category] += e.Amount
	}

	shares := make([]CategoryShare, 0, len(sums))
	var total int64
	for category, sum := range sums {
		shares = append(shares, CategoryShare{Category: category, Total: sum})
		total += sum
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Total != shares[j].Total {
			return shares[i].Total > shares[j].Total
		}
		return shares[i].Category < shares[j].Category
	})

	if len(shares) > topCategories {
		shares = shares[:topCategories]
	}

	if total > 0 {
		for i := range shares {
			shares[i].Percentage = round1(float64(shares[i].Total) / float64(total) * 100)
		}
	}
	return shares
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
