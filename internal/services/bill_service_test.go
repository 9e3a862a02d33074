package services

import (
	"testing"
	"time"

	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/testutil"
)

func TestCreateBill(t *testing.T) {
	t.Run("valid_defaults_to_unpaid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		bill, err := svc.CreateBill(user.ID, "Rent", 1500000, time.Now().AddDate(0, 0, 10), "Housing")
		testutil.AssertNoError(t, err)

		if bill.Status != models.BillStatusUnpaid {
			t.Errorf("new bill status = %q, want unpaid", bill.Status)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBill(user.ID, "", 1000, time.Now(), "Housing")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_due_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBill(user.ID, "Rent", 1000, time.Time{}, "Housing")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestSetBillStatus(t *testing.T) {
	t.Run("toggles_paid_and_back", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)
		bill := testutil.CreateTestBill(t, db, user.ID, 1000, time.Now(), models.BillStatusUnpaid)

		updated, err := svc.SetBillStatus(user.ID, bill.ID, models.BillStatusPaid)
		testutil.AssertNoError(t, err)
		if updated.Status != models.BillStatusPaid {
			t.Errorf("status = %q, want paid", updated.Status)
		}

		updated, err = svc.SetBillStatus(user.ID, bill.ID, models.BillStatusUnpaid)
		testutil.AssertNoError(t, err)
		if updated.Status != models.BillStatusUnpaid {
			t.Errorf("status = %q, want unpaid", updated.Status)
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)
		bill := testutil.CreateTestBill(t, db, user.ID, 1000, time.Now(), models.BillStatusUnpaid)

		_, err := svc.SetBillStatus(user.ID, bill.ID, models.BillStatus("overdue"))
		testutil.AssertAppError(t, err, "INVALID_BILL_STATUS")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		bill := testutil.CreateTestBill(t, db, user1.ID, 1000, time.Now(), models.BillStatusUnpaid)

		_, err := svc.SetBillStatus(user2.ID, bill.ID, models.BillStatusPaid)
		testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
	})
}

func TestGetUserBills(t *testing.T) {
	t.Run("filter_by_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBill(t, db, user.ID, 1000, time.Now(), models.BillStatusPaid)
		testutil.CreateTestBill(t, db, user.ID, 2000, time.Now(), models.BillStatusUnpaid)
		testutil.CreateTestBill(t, db, user.ID, 3000, time.Now(), models.BillStatusUnpaid)

		unpaid := models.BillStatusUnpaid
		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserBills(user.ID, page, &unpaid)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 unpaid bills, got %d", result.TotalItems)
		}
	})

	t.Run("ordered_by_due_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db)
		user := testutil.CreateTestUser(t, db)

		later := testutil.CreateTestBill(t, db, user.ID, 1000, time.Now().AddDate(0, 0, 14), models.BillStatusUnpaid)
		sooner := testutil.CreateTestBill(t, db, user.ID, 2000, time.Now().AddDate(0, 0, 2), models.BillStatusUnpaid)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserBills(user.ID, page, nil)
		testutil.AssertNoError(t, err)

		if result.Data[0].ID != sooner.ID || result.Data[1].ID != later.ID {
			t.Error("bills not ordered by due date")
		}
	})
}

func TestDeleteBill(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBillService(db)
	user := testutil.CreateTestUser(t, db)
	bill := testutil.CreateTestBill(t, db, user.ID, 1000, time.Now(), models.BillStatusUnpaid)

	testutil.AssertNoError(t, svc.DeleteBill(user.ID, bill.ID))

	_, err := svc.GetBillByID(user.ID, bill.ID)
	testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
}
