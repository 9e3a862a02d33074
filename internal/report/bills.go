package report

import (
	"math"
	"sort"
	"time"

	"centavo/internal/models"
)

const (
	upcomingHorizonDays = 7
	urgentThresholdDays = 3
)

// UpcomingBill is an unpaid bill due within the next week.
type UpcomingBill struct {
	models.Bill
	DaysUntilDue int  `json:"days_until_due"`
	Urgent       bool `json:"urgent"`
}

// DaysUntil returns the whole calendar days from today until due, rounding
// partial days up so a bill due later today counts as 0 days away.
func DaysUntil(due, today time.Time) int {
	diff := due.Sub(today)
	return int(math.Ceil(float64(diff.Milliseconds()) / float64(24*time.Hour/time.Millisecond)))
}

// UpcomingBills selects unpaid bills due within the next seven days
// (inclusive of today and day seven), sorted by due date. Bills due in three
// days or fewer are flagged urgent.
func UpcomingBills(bills []models.Bill, today time.Time) []UpcomingBill {
	out := make([]UpcomingBill, 0)
	for _, b := range bills {
		if b.Status != models.BillStatusUnpaid {
			continue
		}
		days := DaysUntil(b.DueDate, today)
		if days < 0 || days > upcomingHorizonDays {
			continue
		}
		out = append(out, UpcomingBill{
			Bill:         b,
			DaysUntilDue: days,
			Urgent:       days <= urgentThresholdDays,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// PaidTotal sums the amounts of paid bills.
func PaidTotal(bills []models.Bill) int64 {
	var sum int64
	for _, b := range bills {
		if b.Status == models.BillStatusPaid {
			sum += b.Amount
		}
	}
	return sum
}
