package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/services"
)

// LabelHandler handles requests for the user's label sets.
type LabelHandler struct {
	labelService services.LabelServicer
	auditService services.AuditServicer
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labelService services.LabelServicer, auditService services.AuditServicer) *LabelHandler {
	return &LabelHandler{labelService: labelService, auditService: auditService}
}

// CreateLabelRequest represents the request payload for adding a label
type CreateLabelRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateLabelRequest represents the request payload for renaming a label
type UpdateLabelRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// LabelResponse represents a label in the response
type LabelResponse struct {
	ID   string           `json:"id"`
	Kind models.LabelKind `json:"kind"`
	Name string           `json:"name"`
}

// parseKind validates the :kind path parameter against the known label kinds.
func parseKind(c *gin.Context) (models.LabelKind, error) {
	raw := c.Param("kind")
	if !models.ValidKind(raw) {
		return "", apperrors.ErrInvalidKind
	}
	return models.LabelKind(raw), nil
}

// CreateLabel handles adding a label to one of the user's label sets
// @Summary     Add a label
// @Description Add a label to one of the user's label sets (expense_category, income_type, bill_category, debt_type)
// @Tags        labels
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind    path string             true "Label kind"
// @Param       request body CreateLabelRequest true "Label name"
// @Success     201 {object} LabelResponse "Label created"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown kind"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Label already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /labels/{kind} [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	kind, err := parseKind(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	label, err := h.labelService.CreateLabel(userID, kind, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_LABEL", "label", label.ID, c.ClientIP(),
		map[string]interface{}{"kind": kind, "name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"label": label})
}

// GetUserLabels handles listing one of the user's label sets
// @Summary     List labels
// @Description Get the user's labels of the given kind, ordered by name
// @Tags        labels
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind path string true "Label kind"
// @Success     200 {object} []LabelResponse "Labels"
// @Failure     400 {object} ErrorResponse "Unknown kind"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /labels/{kind} [get]
func (h *LabelHandler) GetUserLabels(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	kind, err := parseKind(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	labels, err := h.labelService.GetUserLabels(userID, kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"labels": labels})
}

// UpdateLabel handles renaming a label
// @Summary     Rename a label
// @Description Rename a label. Records already tagged with the old name keep it.
// @Tags        labels
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind    path string             true "Label kind"
// @Param       id      path string             true "Label ID"
// @Param       request body UpdateLabelRequest true "New name"
// @Success     200 {object} LabelResponse "Updated label"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Label not found"
// @Failure     409 {object} ErrorResponse "Label already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /labels/{kind}/{id} [put]
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	labelID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	label, err := h.labelService.UpdateLabel(userID, labelID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_LABEL", "label", labelID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"label": label})
}

// DeleteLabel handles removing a label from a set
// @Summary     Delete a label
// @Description Remove a label from a set. Records already tagged with the name keep it as free text.
// @Tags        labels
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind path string true "Label kind"
// @Param       id   path string true "Label ID"
// @Success     200 {object} MessageResponse "Label deleted"
// @Failure     400 {object} ErrorResponse "Invalid label ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Label not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /labels/{kind}/{id} [delete]
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	labelID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.labelService.DeleteLabel(userID, labelID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_LABEL", "label", labelID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Label deleted successfully"})
}
