package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"centavo/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense with the given category and amount (in centavos).
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, category string, amount int64, occurredAt time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		OccurredAt:  occurredAt,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income record with the given type and amount (in centavos).
func CreateTestIncome(t *testing.T, db *gorm.DB, userID, incomeType string, amount int64, occurredAt time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:     userID,
		Type:       incomeType,
		Amount:     amount,
		OccurredAt: occurredAt,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestBill creates a bill with the given status due at the given date.
func CreateTestBill(t *testing.T, db *gorm.DB, userID string, amount int64, dueDate time.Time, status models.BillStatus) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Bill %d", nextID()),
		Amount:   amount,
		DueDate:  dueDate,
		Category: "Utilities",
		Status:   status,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestLabel creates a label of the given kind.
func CreateTestLabel(t *testing.T, db *gorm.DB, userID string, kind models.LabelKind) *models.Label {
	t.Helper()

	label := &models.Label{
		UserID: userID,
		Kind:   kind,
		Name:   fmt.Sprintf("Test Label %d", nextID()),
	}
	if err := db.Create(label).Error; err != nil {
		t.Fatalf("failed to create test label: %v", err)
	}
	return label
}
