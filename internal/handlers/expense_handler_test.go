package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/report"
	"centavo/internal/services"
)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn   func(userID, category string, amount int64, description string, occurredAt time.Time) (*models.Expense, error)
	getUserExpensesFn func(userID string, page pagination.PageRequest, rng *report.Range) (*pagination.PageResponse[models.Expense], error)
	getExpenseByIDFn  func(userID, expenseID string) (*models.Expense, error)
	updateExpenseFn   func(userID, expenseID, category string, amount *int64, description *string, occurredAt *time.Time) (*models.Expense, error)
	deleteExpenseFn   func(userID, expenseID string) error
}

func (m *mockExpenseService) CreateExpense(userID, category string, amount int64, description string, occurredAt time.Time) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, category, amount, description, occurredAt)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID string, page pagination.PageRequest, rng *report.Range) (*pagination.PageResponse[models.Expense], error) {
	if m.getUserExpensesFn != nil {
		return m.getUserExpensesFn(userID, page, rng)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(userID, expenseID)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID, category string, amount *int64, description *string, occurredAt *time.Time) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(userID, expenseID, category, amount, description, occurredAt)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/expenses", handler.CreateExpense)
	auth.GET("/expenses", handler.GetUserExpenses)
	auth.GET("/expenses/:id", handler.GetExpenseByID)
	auth.PUT("/expenses/:id", handler.UpdateExpense)
	auth.DELETE("/expenses/:id", handler.DeleteExpense)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		expenseSvc := &mockExpenseService{
			createExpenseFn: func(userID, category string, amount int64, description string, occurredAt time.Time) (*models.Expense, error) {
				return &models.Expense{
					UserID:      userID,
					Category:    category,
					Amount:      amount,
					Description: description,
					OccurredAt:  occurredAt,
				}, nil
			},
		}
		handler := NewExpenseHandler(expenseSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses", `{"category":"Grocery","amount":125050,"description":"Weekly run"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["category"] != "Grocery" {
			t.Errorf("expected Grocery, got %v", expense["category"])
		}
		if expense["amount"] != float64(125050) {
			t.Errorf("expected 125050, got %v", expense["amount"])
		}
	})

	t.Run("returns 400 on missing category", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses", `{"amount":1000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on bad occurred_at", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses", `{"category":"Grocery","amount":1000,"occurred_at":"yesterday"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("accepts bare date", func(t *testing.T) {
		var captured time.Time
		expenseSvc := &mockExpenseService{
			createExpenseFn: func(_, _ string, _ int64, _ string, occurredAt time.Time) (*models.Expense, error) {
				captured = occurredAt
				return &models.Expense{}, nil
			},
		}
		handler := NewExpenseHandler(expenseSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses", `{"category":"Grocery","amount":1000,"occurred_at":"2026-08-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Year() != 2026 || captured.Month() != time.August || captured.Day() != 15 {
			t.Errorf("expected 2026-08-15, got %v", captured)
		}
	})
}

func TestExpenseHandler_GetUserExpenses(t *testing.T) {
	t.Run("passes range filter to service", func(t *testing.T) {
		var captured *report.Range
		expenseSvc := &mockExpenseService{
			getUserExpensesFn: func(_ string, _ pagination.PageRequest, rng *report.Range) (*pagination.PageResponse[models.Expense], error) {
				captured = rng
				resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewExpenseHandler(expenseSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		doRequest(r, "GET", "/expenses?range=month", "")

		if captured == nil || *captured != report.RangeMonth {
			t.Errorf("expected month range, got %v", captured)
		}
	})

	t.Run("no range means all records", func(t *testing.T) {
		var captured *report.Range
		called := false
		expenseSvc := &mockExpenseService{
			getUserExpensesFn: func(_ string, _ pagination.PageRequest, rng *report.Range) (*pagination.PageResponse[models.Expense], error) {
				captured = rng
				called = true
				resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewExpenseHandler(expenseSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		doRequest(r, "GET", "/expenses", "")

		if !called {
			t.Fatal("service was not called")
		}
		if captured != nil {
			t.Errorf("expected nil range, got %v", *captured)
		}
	})
}

func TestExpenseHandler_GetExpenseByID(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		expenseSvc := &mockExpenseService{
			getExpenseByIDFn: func(_, _ string) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(expenseSvc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/0198f1a2-0000-7000-8000-0000000000ee", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EXPENSE_NOT_FOUND")
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/0198f1a2-0000-7000-8000-0000000000ee", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Expense deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})
}
