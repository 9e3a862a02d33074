package services

import (
	"testing"

	"centavo/internal/models"
	"centavo/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid_seeds_default_labels", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		labels := NewLabelService(db)
		svc := NewUserService(db, labels)

		user, err := svc.CreateUser("maria@example.com", "password123", "Maria", "Santos")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "maria@example.com" {
			t.Errorf("email = %q", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password stored in plain text")
		}

		var want int
		for _, names := range models.DefaultLabels() {
			want += len(names)
		}
		var labelCount int64
		if err := db.Model(&models.Label{}).Where("user_id = ?", user.ID).Count(&labelCount).Error; err != nil {
			t.Fatalf("failed to count labels: %v", err)
		}
		if labelCount != int64(want) {
			t.Errorf("expected %d seeded labels, got %d", want, labelCount)
		}
	})

	t.Run("lowercases_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewLabelService(db))

		user, err := svc.CreateUser("Maria@Example.COM", "password123", "", "")
		testutil.AssertNoError(t, err)
		if user.Email != "maria@example.com" {
			t.Errorf("email = %q, want lowercased", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewLabelService(db))

		_, err := svc.CreateUser("dup@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateUser("dup@example.com", "password456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewLabelService(db))

		_, err := svc.CreateUser("", "password123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db, NewLabelService(db))

	user, err := svc.CreateUser("verify@example.com", "correct-horse", "", "")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "correct-horse") {
		t.Error("correct password rejected")
	}
	if svc.VerifyPassword(user, "wrong-battery") {
		t.Error("wrong password accepted")
	}
}

func TestRefreshTokenHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db, NewLabelService(db))

	user, err := svc.CreateUser("refresh@example.com", "password123", "", "")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123"))

	hash, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "abc123" {
		t.Errorf("hash = %q, want abc123", hash)
	}
}
