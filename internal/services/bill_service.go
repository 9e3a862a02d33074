package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
)

// billService handles bill-related business logic.
type billService struct {
	db *gorm.DB
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db}
}

// CreateBill records a new bill, unpaid by default.
func (s *billService) CreateBill(userID, name string, amount int64, dueDate time.Time, category string) (*models.Bill, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill name is required")
	}
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if dueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}

	bill := &models.Bill{
		UserID:   userID,
		Name:     name,
		Amount:   amount,
		DueDate:  dueDate,
		Category: category,
		Status:   models.BillStatusUnpaid,
	}
	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// GetUserBills returns a paginated list of the user's bills ordered by due
// date, optionally filtered by status.
func (s *billService) GetUserBills(userID string, page pagination.PageRequest, status *models.BillStatus) (*pagination.PageResponse[models.Bill], error) {
	page.Defaults()

	base := s.db.Model(&models.Bill{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bills []models.Bill
	if err := base.Order("due_date").Scopes(pagination.Paginate(page)).Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(bills, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBillByID retrieves a bill owned by the user.
func (s *billService) GetBillByID(userID, billID string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// UpdateBill patches the mutable fields of a bill. Status changes go through
// SetBillStatus.
func (s *billService) UpdateBill(userID, billID, name string, amount *int64, dueDate *time.Time, category string) (*models.Bill, error) {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if amount != nil {
		if *amount < 0 {
			return nil, apperrors.ErrNegativeAmount
		}
		updates["amount"] = *amount
	}
	if dueDate != nil {
		updates["due_date"] = *dueDate
	}
	if category != "" {
		updates["category"] = category
	}

	if len(updates) > 0 {
		if err := s.db.Model(bill).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return bill, nil
}

// SetBillStatus toggles a bill between paid and unpaid.
func (s *billService) SetBillStatus(userID, billID string, status models.BillStatus) (*models.Bill, error) {
	if status != models.BillStatusPaid && status != models.BillStatusUnpaid {
		return nil, apperrors.ErrInvalidBillStatus
	}

	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(bill).Update("status", status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// DeleteBill removes a bill owned by the user.
func (s *billService) DeleteBill(userID, billID string) error {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(bill).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
