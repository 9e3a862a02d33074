package integration

import (
	"net/http"
	"testing"
)

func TestLabelFlow_AddRenameDelete(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "labelflow@test.com", "password123")

	// Add a custom expense category
	rec := app.request("POST", "/api/v1/labels/expense_category", `{"name":"Books"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create label failed: %d %s", rec.Code, rec.Body.String())
	}
	label := parseJSON(t, rec)["label"].(map[string]interface{})
	labelID := label["id"].(string)
	if label["kind"] != "expense_category" {
		t.Errorf("expected kind expense_category, got %v", label["kind"])
	}

	// 4 defaults plus the new one
	rec = app.request("GET", "/api/v1/labels/expense_category", "", token)
	labels := parseJSON(t, rec)["labels"].([]interface{})
	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}

	// Rename
	rec = app.request("PUT", "/api/v1/labels/expense_category/"+labelID, `{"name":"Reading"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("rename failed: %d %s", rec.Code, rec.Body.String())
	}
	renamed := parseJSON(t, rec)["label"].(map[string]interface{})
	if renamed["name"] != "Reading" {
		t.Errorf("expected Reading, got %v", renamed["name"])
	}

	// Delete
	rec = app.request("DELETE", "/api/v1/labels/expense_category/"+labelID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/labels/expense_category", "", token)
	labels = parseJSON(t, rec)["labels"].([]interface{})
	if len(labels) != 4 {
		t.Errorf("expected 4 labels after delete, got %d", len(labels))
	}
}

func TestLabelFlow_DuplicateNameRejected(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "duplabel@test.com", "password123")

	// Snacks is seeded by default
	rec := app.request("POST", "/api/v1/labels/expense_category", `{"name":"Snacks"}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, rec, "DUPLICATE_LABEL")
}

func TestLabelFlow_SameNameDifferentKinds(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "crosskind@test.com", "password123")

	// "Loan" is already seeded for income_type and bill_category, and the
	// same name can live in further kinds independently.
	rec := app.request("POST", "/api/v1/labels/debt_type", `{"name":"Loan"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for same name in different kind, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLabelFlow_UnknownKindRejected(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "badkind@test.com", "password123")

	rec := app.request("GET", "/api/v1/labels/hobby", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown kind, got %d", rec.Code)
	}
	assertErrorCode(t, rec, "INVALID_LABEL_KIND")
}

func TestLabelFlow_DeleteKeepsTaggedRecords(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "orphan@test.com", "password123")

	rec := app.request("POST", "/api/v1/labels/expense_category", `{"name":"Gadgets"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create label failed: %d %s", rec.Code, rec.Body.String())
	}
	labelID := parseJSON(t, rec)["label"].(map[string]interface{})["id"].(string)

	expenseID := app.createExpense(t, token, "Gadgets", 89900)

	rec = app.request("DELETE", "/api/v1/labels/expense_category/"+labelID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete label failed: %d %s", rec.Code, rec.Body.String())
	}

	// The expense keeps its category name as free text
	rec = app.request("GET", "/api/v1/expenses/"+expenseID, "", token)
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["category"] != "Gadgets" {
		t.Errorf("expected category Gadgets to survive label deletion, got %v", expense["category"])
	}
}
