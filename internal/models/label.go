package models

// LabelKind identifies which of the four user-scoped label lists a label
// belongs to.
type LabelKind string

const (
	LabelKindExpenseCategory LabelKind = "expense_category"
	LabelKindIncomeType      LabelKind = "income_type"
	LabelKindBillCategory    LabelKind = "bill_category"
	LabelKindDebtType        LabelKind = "debt_type"
)

// Kinds lists every label kind.
func Kinds() []LabelKind {
	return []LabelKind{
		LabelKindExpenseCategory,
		LabelKindIncomeType,
		LabelKindBillCategory,
		LabelKindDebtType,
	}
}

// ValidKind reports whether s names a known label kind.
func ValidKind(s string) bool {
	switch LabelKind(s) {
	case LabelKindExpenseCategory, LabelKindIncomeType, LabelKindBillCategory, LabelKindDebtType:
		return true
	}
	return false
}

// Label is a user-scoped free-text name used to classify expenses, income,
// and bills. Records reference labels by name, not by key, so renaming or
// deleting a label never rewrites existing records.
type Label struct {
	Base
	UserID string    `gorm:"type:uuid;not null;index:idx_labels_user_kind" json:"user_id"`
	Kind   LabelKind `gorm:"not null;index:idx_labels_user_kind" json:"kind"`
	Name   string    `gorm:"not null" json:"name"`
}

// DefaultLabels returns the label names seeded for each kind at registration.
func DefaultLabels() map[LabelKind][]string {
	return map[LabelKind][]string{
		LabelKindExpenseCategory: {"Snacks", "Transport", "Grocery", "Entertainment"},
		LabelKindIncomeType:      {"Salary", "Freelance", "Gift", "Loan"},
		LabelKindBillCategory:    {"Subscription", "Utilities", "Mobile", "Loan"},
		LabelKindDebtType:        {"Personal", "Bank", "Credit"},
	}
}
