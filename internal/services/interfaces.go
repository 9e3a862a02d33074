package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	RecordLogin(userID string) error
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// LabelServicer defines the contract for the four user-scoped label lists.
type LabelServicer interface {
	SeedDefaults(tx *gorm.DB, userID string) error
	CreateLabel(userID string, kind models.LabelKind, name string) (*models.Label, error)
	GetUserLabels(userID string, kind models.LabelKind) ([]models.Label, error)
	UpdateLabel(userID, labelID string, name string) (*models.Label, error)
	DeleteLabel(userID, labelID string) error
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, category string, amount int64, description string, occurredAt time.Time) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest, rng *report.Range) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID, category string, amount *int64, description *string, occurredAt *time.Time) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// IncomeCreateResult carries the outcome of recording income. When the income
// type is loan/debt a repayment bill is synthesized alongside; LinkedBillErr
// reports a partial failure where the income was saved but the bill was not,
// so callers can retry bill creation alone.
type IncomeCreateResult struct {
	Income        *models.Income `json:"income"`
	LinkedBill    *models.Bill   `json:"linked_bill,omitempty"`
	LinkedBillErr error          `json:"-"`
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(userID, incomeType string, amount int64, description string, occurredAt time.Time, dueDate *time.Time) (*IncomeCreateResult, error)
	GetUserIncome(userID string, page pagination.PageRequest, rng *report.Range) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(userID, incomeID string) (*models.Income, error)
	UpdateIncome(userID, incomeID, incomeType string, amount *int64, description *string, occurredAt, dueDate *time.Time) (*models.Income, error)
	DeleteIncome(userID, incomeID string) error
}

// BillServicer defines the contract for bill-related business logic.
type BillServicer interface {
	CreateBill(userID, name string, amount int64, dueDate time.Time, category string) (*models.Bill, error)
	GetUserBills(userID string, page pagination.PageRequest, status *models.BillStatus) (*pagination.PageResponse[models.Bill], error)
	GetBillByID(userID, billID string) (*models.Bill, error)
	UpdateBill(userID, billID, name string, amount *int64, dueDate *time.Time, category string) (*models.Bill, error)
	SetBillStatus(userID, billID string, status models.BillStatus) (*models.Bill, error)
	DeleteBill(userID, billID string) error
}

// ReportServicer defines the contract for dashboard aggregation.
type ReportServicer interface {
	GetDashboard(ctx context.Context, userID string, rng report.Range, now time.Time) (*report.Summary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
