package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/logger"
	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/report"
)

// incomeService handles income-related business logic, including the
// loan-to-bill synthesis side effect.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records income. When the type is loan or debt
// (case-insensitive) a repayment bill is synthesized in the same call. The
// income write and the bill write are deliberately not one transaction: the
// income must survive a bill failure, and the failure is surfaced in the
// result so the caller can retry the bill alone.
func (s *incomeService) CreateIncome(userID, incomeType string, amount int64, description string, occurredAt time.Time, dueDate *time.Time) (*IncomeCreateResult, error) {
	if incomeType == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income type is required")
	}
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	income := &models.Income{
		UserID:      userID,
		Type:        incomeType,
		Amount:      amount,
		Description: description,
		OccurredAt:  occurredAt,
		DueDate:     dueDate,
	}
	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &IncomeCreateResult{Income: income}
	if !income.IsLoan() {
		return result, nil
	}

	bill, err := s.synthesizeBill(income)
	if err != nil {
		logger.Get().Errorw("loan bill synthesis failed",
			"user_id", userID,
			"income_id", income.ID,
			"error", err,
		)
		result.LinkedBillErr = apperrors.Wrap(apperrors.ErrLinkedBillFailed, err)
		return result, nil
	}
	result.LinkedBill = bill
	return result, nil
}

// synthesizeBill creates the repayment bill for loan/debt income: named after
// the income's description (falling back to its type), due on the income's
// due date, categorized "Loan", and unpaid.
func (s *incomeService) synthesizeBill(income *models.Income) (*models.Bill, error) {
	name := income.Description
	if name == "" {
		name = income.Type
	}

	dueDate := income.OccurredAt
	if income.DueDate != nil {
		dueDate = *income.DueDate
	}

	bill := &models.Bill{
		UserID:         income.UserID,
		Name:           "Loan: " + name,
		Amount:         income.Amount,
		DueDate:        dueDate,
		Category:       "Loan",
		Status:         models.BillStatusUnpaid,
		SourceIncomeID: &income.ID,
	}
	if err := s.db.Create(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

// GetUserIncome returns a paginated list of the user's income records, newest
// first, optionally restricted to a time window.
func (s *incomeService) GetUserIncome(userID string, page pagination.PageRequest, rng *report.Range) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)
	if rng != nil {
		base = base.Where("occurred_at >= ?", report.WindowStart(*rng, time.Now()))
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Order("occurred_at DESC").Scopes(pagination.Paginate(page)).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIncomeByID retrieves an income record owned by the user.
func (s *incomeService) GetIncomeByID(userID, incomeID string) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome patches the mutable fields of an income record. Bill synthesis
// fires only at creation; changing the type to loan later creates nothing.
func (s *incomeService) UpdateIncome(userID, incomeID, incomeType string, amount *int64, description *string, occurredAt, dueDate *time.Time) (*models.Income, error) {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if incomeType != "" {
		updates["type"] = incomeType
	}
	if amount != nil {
		if *amount < 0 {
			return nil, apperrors.ErrNegativeAmount
		}
		updates["amount"] = *amount
	}
	if description != nil {
		updates["description"] = *description
	}
	if occurredAt != nil {
		updates["occurred_at"] = *occurredAt
	}
	if dueDate != nil {
		updates["due_date"] = dueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return income, nil
}

// DeleteIncome removes an income record owned by the user.
func (s *incomeService) DeleteIncome(userID, incomeID string) error {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
