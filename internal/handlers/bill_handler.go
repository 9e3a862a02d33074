package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/pagination"
	"centavo/internal/services"
)

// BillHandler handles bill-related requests.
type BillHandler struct {
	billService  services.BillServicer
	auditService services.AuditServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer, auditService services.AuditServicer) *BillHandler {
	return &BillHandler{billService: billService, auditService: auditService}
}

// CreateBillRequest represents the request payload for creating a bill
type CreateBillRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Amount   int64  `json:"amount" binding:"required,gte=0"`
	DueDate  string `json:"due_date" binding:"required"`
	Category string `json:"category" binding:"max=100"`
}

// UpdateBillRequest represents the request payload for updating a bill.
type UpdateBillRequest struct {
	Name     string  `json:"name" binding:"omitempty,max=200"`
	Amount   *int64  `json:"amount" binding:"omitempty,gte=0"`
	DueDate  *string `json:"due_date"`
	Category string  `json:"category" binding:"omitempty,max=100"`
}

// SetBillStatusRequest represents the request payload for changing a bill's status
type SetBillStatusRequest struct {
	Status models.BillStatus `json:"status" binding:"required,bill_status"`
}

// BillResponse represents a bill in the response
type BillResponse struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	Name           string            `json:"name"`
	Amount         int64             `json:"amount"`
	DueDate        time.Time         `json:"due_date"`
	Category       string            `json:"category"`
	Status         models.BillStatus `json:"status"`
	SourceIncomeID *string           `json:"source_income_id,omitempty"`
}

// CreateBill handles the creation of a new bill
// @Summary     Create a bill
// @Description Create a new bill. Amount is in centavos. Bills start unpaid.
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBillRequest true "Bill details"
// @Success     201 {object} BillResponse "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := parseFlexibleTime(req.DueDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid due_date format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	bill, err := h.billService.CreateBill(userID, req.Name, req.Amount, dueDate, req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BILL", "bill", bill.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetUserBills handles the retrieval of the user's bills
// @Summary     List bills
// @Description Get a paginated list of the authenticated user's bills ordered by due date, optionally filtered by status
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       status    query string false "Filter by status (unpaid, paid)"
// @Success     200 {object} pagination.PageResponse[models.Bill] "Paginated bills"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [get]
func (h *BillHandler) GetUserBills(c *gin.Context) {
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

	var status *models.BillStatus
	if v := c.Query("status"); v != "" {
		s := models.BillStatus(v)
		if s != models.BillStatusUnpaid && s != models.BillStatusPaid {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status, must be unpaid or paid"))
			return
		}
		status = &s
	}

	result, err := h.billService.GetUserBills(userID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBillByID handles the retrieval of a single bill
// @Summary     Get bill by ID
// @Description Get a specific bill by ID
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bill ID"
// @Success     200 {object} BillResponse "Bill details"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [get]
func (h *BillHandler) GetBillByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.GetBillByID(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// UpdateBill handles updating an existing bill
// @Summary     Update bill
// @Description Update fields of an existing bill. Omitted fields are left unchanged. Use the status endpoint to mark bills paid.
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Bill ID"
// @Param       request body UpdateBillRequest true "Fields to update"
// @Success     200 {object} BillResponse "Updated bill"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
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

	bill, err := h.billService.UpdateBill(userID, billID, req.Name, req.Amount, dueDate, req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BILL", "bill", billID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// SetBillStatus handles toggling a bill between paid and unpaid
// @Summary     Set bill status
// @Description Mark a bill paid or unpaid
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Bill ID"
// @Param       request body SetBillStatusRequest true "New status"
// @Success     200 {object} BillResponse "Updated bill"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id}/status [patch]
func (h *BillHandler) SetBillStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.SetBillStatus(userID, billID, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BILL_STATUS", "bill", billID, c.ClientIP(),
		map[string]interface{}{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// DeleteBill handles the deletion of a bill
// @Summary     Delete bill
// @Description Delete a bill by ID
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bill ID"
// @Success     200 {object} MessageResponse "Bill deleted"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeleteBill(userID, billID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BILL", "bill", billID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}
