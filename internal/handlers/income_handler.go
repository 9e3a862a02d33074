package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/report"
	"centavo/internal/services"
)

// IncomeHandler handles income-related requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
	auditService  services.AuditServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer, auditService services.AuditServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService, auditService: auditService}
}

// CreateIncomeRequest represents the request payload for recording income
type CreateIncomeRequest struct {
	Type        string  `json:"type" binding:"required,max=100"`
	Amount      int64   `json:"amount" binding:"required,gte=0"`
	Description string  `json:"description" binding:"max=500"`
	OccurredAt  *string `json:"occurred_at"`
	DueDate     *string `json:"due_date"`
}

// UpdateIncomeRequest represents the request payload for updating income.
type UpdateIncomeRequest struct {
	Type        string  `json:"type" binding:"omitempty,max=100"`
	Amount      *int64  `json:"amount" binding:"omitempty,gte=0"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	OccurredAt  *string `json:"occurred_at"`
	DueDate     *string `json:"due_date"`
}

// IncomeResponse represents an income record with an optional linked repayment bill
type IncomeResponse struct {
	Income          models.Income `json:"income"`
	LinkedBill      *models.Bill  `json:"linked_bill,omitempty"`
	LinkedBillError *ErrorDetail  `json:"linked_bill_error,omitempty"`
}

// CreateIncome handles the recording of new income
// @Summary     Record income
// @Description Record new income. Amount is in centavos. Loan/debt income types synthesize an unpaid repayment bill; if the bill cannot be created the income is still saved and linked_bill_error reports the failure.
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income details"
// @Success     201 {object} IncomeResponse "Income recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil && *req.OccurredAt != "" {
		parsed, parseErr := parseFlexibleTime(*req.OccurredAt)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid occurred_at format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		occurredAt = parsed
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.DueDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid due_date format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		dueDate = &parsed
	}

	result, err := h.incomeService.CreateIncome(userID, req.Type, req.Amount, req.Description, occurredAt, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INCOME", "income", result.Income.ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "amount": req.Amount})

	resp := gin.H{"income": result.Income}
	if result.LinkedBill != nil {
		resp["linked_bill"] = result.LinkedBill
	}
	if result.LinkedBillErr != nil {
		detail := ErrorDetail{
			Code:    apperrors.ErrLinkedBillFailed.Code,
			Message: apperrors.ErrLinkedBillFailed.Message,
		}
		resp["linked_bill_error"] = detail
	}

	c.JSON(http.StatusCreated, resp)
}

// GetUserIncome handles the retrieval of the user's income records
// @Summary     List income
// @Description Get a paginated list of the authenticated user's income records, newest first
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       range     query string false "Time window filter (week, month, year)"
// @Success     200 {object} pagination.PageResponse[models.Income] "Paginated income records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [get]
func (h *IncomeHandler) GetUserIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var rng *report.Range
	if v := c.Query("range"); v != "" {
		r := report.ParseRange(v)
		rng = &r
	}

	result, err := h.incomeService.GetUserIncome(userID, page, rng)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetIncomeByID handles the retrieval of a single income record
// @Summary     Get income by ID
// @Description Get a specific income record by ID
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} IncomeResponse "Income details"
// @Failure     400 {object} ErrorResponse "Invalid income ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [get]
func (h *IncomeHandler) GetIncomeByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncomeByID(userID, incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncome handles updating an existing income record
// @Summary     Update income
// @Description Update fields of an existing income record. Changing the type to loan/debt does not synthesize a repayment bill; bills are linked at creation only.
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Income ID"
// @Param       request body UpdateIncomeRequest true "Fields to update"
// @Success     200 {object} IncomeResponse "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var occurredAt, dueDate *time.Time
	if req.OccurredAt != nil && *req.OccurredAt != "" {
		parsed, parseErr := parseFlexibleTime(*req.OccurredAt)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid occurred_at format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		occurredAt = &parsed
	}
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.DueDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid due_date format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		dueDate = &parsed
	}

	income, err := h.incomeService.UpdateIncome(userID, incomeID, req.Type, req.Amount, req.Description, occurredAt, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INCOME", "income", incomeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncome handles the deletion of an income record
// @Summary     Delete income
// @Description Delete an income record by ID. A linked repayment bill, if any, is left in place.
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income ID"
// @Success     200 {object} MessageResponse "Income deleted"
// @Failure     400 {object} ErrorResponse "Invalid income ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(userID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INCOME", "income", incomeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
