package models

import "time"

// BillStatus represents the payment state of a bill.
type BillStatus string

const (
	BillStatusUnpaid BillStatus = "unpaid"
	BillStatusPaid   BillStatus = "paid"
)

// Bill represents a payable with a due date. Bills are created explicitly by
// the user or synthesized when loan/debt income is recorded.
type Bill struct {
	Base
	UserID   string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string     `gorm:"not null" json:"name"`
	Amount   int64      `gorm:"type:bigint;not null" json:"amount"`
	DueDate  time.Time  `gorm:"not null;index" json:"due_date"`
	Category string     `gorm:"not null" json:"category"`
	Status   BillStatus `gorm:"not null;default:unpaid" json:"status"`

	// SourceIncomeID links a synthesized bill back to the loan income that
	// created it.
	SourceIncomeID *string `gorm:"type:uuid" json:"source_income_id,omitempty"`
}

// When returns the timestamp used for time-window filtering. Bills are
// filtered by due date, matching how users reason about billing periods.
func (b Bill) When() time.Time { return b.DueDate }

// Value returns the amount in centavos.
func (b Bill) Value() int64 { return b.Amount }
