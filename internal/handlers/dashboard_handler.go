package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"centavo/internal/report"
	"centavo/internal/services"
)

// DashboardHandler handles dashboard aggregation requests.
type DashboardHandler struct {
	reportService services.ReportServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportService services.ReportServicer) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// GetDashboard handles the dashboard summary request
// @Summary     Get dashboard summary
// @Description Get the aggregated dashboard for the authenticated user: totals, category breakdown, month-over-month trends, upcoming bills, and recent activity. All amounts are in centavos.
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       range query string false "Time window (week, month, year; default month)"
// @Success     200 {object} report.Summary "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rng := report.ParseRange(c.Query("range"))

	summary, err := h.reportService.GetDashboard(c.Request.Context(), userID, rng, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
