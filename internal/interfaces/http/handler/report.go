package handler

import (
	"strings"
	"time"

	reportapp "github.com/brutchm/proyecto-3-back-end-sub000/internal/application/report"
	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/report"
	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/shared"
	"github.com/brutchm/proyecto-3-back-end-sub000/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles report-related API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ===================== Request DTOs =====================

// ReportFilterRequest defines the query parameters for report generation
type ReportFilterRequest struct {
	ReportType string `form:"report_type" binding:"required"`
	StartDate  string `form:"start_date" binding:"required"`
	EndDate    string `form:"end_date" binding:"required"`
	FarmID     string `form:"farm_id"`
	CropID     string `form:"crop_id"`
	Format     string `form:"format"`
}

// GenerateReport builds an aggregated report for the authenticated user.
// Results are returned as JSON; the tabular export format is not available yet.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var q ReportFilterRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if format := strings.ToLower(q.Format); format != "" && format != "json" {
		h.HandleError(c, shared.ErrNotImplemented)
		return
	}

	req, err := h.parseReportRequest(q)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	generated, err := h.reportService.GenerateReport(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, generated)
}

// parseReportRequest converts raw query values into a domain report request
func (h *ReportHandler) parseReportRequest(q ReportFilterRequest) (report.ReportRequest, error) {
	req := report.ReportRequest{
		Type: report.ReportType(q.ReportType),
	}

	startDate, err := time.Parse("2006-01-02", q.StartDate)
	if err != nil {
		return req, shared.NewValidationError("start_date: Invalid date format, expected YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", q.EndDate)
	if err != nil {
		return req, shared.NewValidationError("end_date: Invalid date format, expected YYYY-MM-DD")
	}
	req.StartDate = startDate
	req.EndDate = endDate

	if q.FarmID != "" {
		farmID, err := uuid.Parse(q.FarmID)
		if err != nil {
			return req, shared.NewValidationError("farm_id: Invalid UUID format")
		}
		req.FarmID = &farmID
	}
	if q.CropID != "" {
		cropID, err := uuid.Parse(q.CropID)
		if err != nil {
			return req, shared.NewValidationError("crop_id: Invalid UUID format")
		}
		req.CropID = &cropID
	}

	return req, nil
}
