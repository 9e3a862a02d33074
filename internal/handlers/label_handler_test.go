package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/services"
)

// --- mock label service ---

type mockLabelService struct {
	createLabelFn   func(userID string, kind models.LabelKind, name string) (*models.Label, error)
	getUserLabelsFn func(userID string, kind models.LabelKind) ([]models.Label, error)
	updateLabelFn   func(userID, labelID, name string) (*models.Label, error)
	deleteLabelFn   func(userID, labelID string) error
}

func (m *mockLabelService) SeedDefaults(_ *gorm.DB, _ string) error { return nil }

func (m *mockLabelService) CreateLabel(userID string, kind models.LabelKind, name string) (*models.Label, error) {
	if m.createLabelFn != nil {
		return m.createLabelFn(userID, kind, name)
	}
	return &models.Label{}, nil
}

func (m *mockLabelService) GetUserLabels(userID string, kind models.LabelKind) ([]models.Label, error) {
	if m.getUserLabelsFn != nil {
		return m.getUserLabelsFn(userID, kind)
	}
	return []models.Label{}, nil
}

func (m *mockLabelService) UpdateLabel(userID, labelID, name string) (*models.Label, error) {
	if m.updateLabelFn != nil {
		return m.updateLabelFn(userID, labelID, name)
	}
	return &models.Label{}, nil
}

func (m *mockLabelService) DeleteLabel(userID, labelID string) error {
	if m.deleteLabelFn != nil {
		return m.deleteLabelFn(userID, labelID)
	}
	return nil
}

var _ services.LabelServicer = (*mockLabelService)(nil)

func setupLabelRouter(handler *LabelHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/labels/:kind", handler.CreateLabel)
	auth.GET("/labels/:kind", handler.GetUserLabels)
	auth.PUT("/labels/:kind/:id", handler.UpdateLabel)
	auth.DELETE("/labels/:kind/:id", handler.DeleteLabel)
	return r
}

func TestLabelHandler_CreateLabel(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		labelSvc := &mockLabelService{
			createLabelFn: func(userID string, kind models.LabelKind, name string) (*models.Label, error) {
				return &models.Label{UserID: userID, Kind: kind, Name: name}, nil
			},
		}
		handler := NewLabelHandler(labelSvc, &mockAuditService{})
		r := setupLabelRouter(handler)

		rec := doRequest(r, "POST", "/labels/expense_category", `{"name":"Coffee"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		label := result["label"].(map[string]interface{})
		if label["name"] != "Coffee" {
			t.Errorf("expected Coffee, got %v", label["name"])
		}
		if label["kind"] != "expense_category" {
			t.Errorf("expected expense_category, got %v", label["kind"])
		}
	})

	t.Run("returns 400 on unknown kind", func(t *testing.T) {
		handler := NewLabelHandler(&mockLabelService{}, &mockAuditService{})
		r := setupLabelRouter(handler)

		rec := doRequest(r, "POST", "/labels/hobby", `{"name":"Coffee"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_LABEL_KIND")
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewLabelHandler(&mockLabelService{}, &mockAuditService{})
		r := setupLabelRouter(handler)

		rec := doRequest(r, "POST", "/labels/expense_category", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate", func(t *testing.T) {
		labelSvc := &mockLabelService{
			createLabelFn: func(_ string, _ models.LabelKind, _ string) (*models.Label, error) {
				return nil, apperrors.ErrDuplicateLabel
			},
		}
		handler := NewLabelHandler(labelSvc, &mockAuditService{})
		r := setupLabelRouter(handler)

		rec := doRequest(r, "POST", "/labels/expense_category", `{"name":"Grocery"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}

func TestLabelHandler_GetUserLabels(t *testing.T) {
	t.Run("returns 200 with labels", func(t *testing.T) {
		labelSvc := &mockLabelService{
			getUserLabelsFn: func(_ string, kind models.LabelKind) ([]models.Label, error) {
				return []models.Label{
					{Kind: kind, Name: "Salary"},
					{Kind: kind, Name: "Freelance"},
				}, nil
			},
		}
		handler := NewLabelHandler(labelSvc, &mockAuditService{})
		r := setupLabelRouter(handler)

		rec := doRequest(r, "GET", "/labels/income_type", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		labels := result["labels"].([]interface{})
		if len(labels) != 2 {
			t.Errorf("expected 2 labels, got %d", len(labels))
		}
	})

	t.Run("returns 400 on unknown kind", func(t *testing.T) {
		handler := NewLabelHandler(&mockLabelService{}, &mockAuditService{})
		r := setupLabelRouter(handler)

		rec := doRequest(r, "GET", "/labels/hobby", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestLabelHandler_DeleteLabel(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewLabelHandler(&mockLabelService{}, &mockAuditService{})
		r := setupLabelRouter(handler)

		rec := doRequest(r, "DELETE", "/labels/expense_category/0198f1a2-0000-7000-8000-0000000000dd", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		labelSvc := &mockLabelService{
			deleteLabelFn: func(_, _ string) error {
				return apperrors.ErrLabelNotFound
			},
		}
		handler := NewLabelHandler(labelSvc, &mockAuditService{})
		r := setupLabelRouter(handler)

		rec := doRequest(r, "DELETE", "/labels/expense_category/0198f1a2-0000-7000-8000-0000000000dd", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
