package models

import (
	"strings"
	"time"
)

// Income represents an earning record. Type is the free-text name of an
// income-type label. DueDate is only meaningful for loan/debt income, where
// it seeds the automatically created repayment bill.
type Income struct {
	Base
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string     `gorm:"not null" json:"type"`
	Amount      int64      `gorm:"type:bigint;not null" json:"amount"`
	Description string     `json:"description"`
	OccurredAt  time.Time  `gorm:"not null;index" json:"occurred_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// When returns the timestamp used for time-window filtering.
func (i Income) When() time.Time { return i.OccurredAt }

// Value returns the amount in centavos.
func (i Income) Value() int64 { return i.Amount }

// IsLoan reports whether this income type triggers bill synthesis at creation.
func (i Income) IsLoan() bool {
	switch strings.ToLower(i.Type) {
	case "loan", "debt":
		return true
	}
	return false
}
