package handler

import (
	dashboardapp "github.com/brutchm/proyecto-3-back-end-sub000/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard API endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboardapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *dashboardapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary returns the all-time totals for the authenticated user
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// GetMonthlySplit returns the income and expenses of the current calendar month
func (h *DashboardHandler) GetMonthlySplit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	split, err := h.dashboardService.GetCurrentMonthSplit(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, split)
}

// GetTopCrops returns the five crops with the largest registered yield
func (h *DashboardHandler) GetTopCrops(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	crops, err := h.dashboardService.GetTopCropYields(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, crops)
}
