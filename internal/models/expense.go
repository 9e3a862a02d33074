package models

import "time"

// Expense represents a single spending record. Category is the free-text name
// of an expense-category label; deleting the label leaves this string intact.
type Expense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Category    string    `gorm:"not null" json:"category"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	Description string    `json:"description"`
	OccurredAt  time.Time `gorm:"not null;index" json:"occurred_at"`
}

// When returns the timestamp used for time-window filtering.
func (e Expense) When() time.Time { return e.OccurredAt }

// Value returns the amount in centavos.
func (e Expense) Value() int64 { return e.Amount }
