package report

import (
	"time"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ReportType identifies one of the supported aggregation reports
type ReportType string

const (
	ReportTypeIncomeVsExpenses ReportType = "INCOME_VS_EXPENSES"
	ReportTypeCropYield        ReportType = "CROP_YIELD"
	ReportTypeOperationalCosts ReportType = "OPERATIONAL_COSTS"
	ReportTypePlotYield        ReportType = "PLOT_YIELD"
	ReportTypeCropCosts        ReportType = "CROP_COSTS"
	ReportTypeFarmCosts        ReportType = "FARM_COSTS"
)

// IsValid reports whether the report type is one of the supported kinds
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeIncomeVsExpenses, ReportTypeCropYield, ReportTypeOperationalCosts,
		ReportTypePlotYield, ReportTypeCropCosts, ReportTypeFarmCosts:
		return true
	}
	return false
}

// ErrFarmIDRequired is returned when a plot yield report is requested
// without a farm scope.
var ErrFarmIDRequired = shared.NewValidationError("Farm ID is required for Plot Yield report.")

// ErrUnsupportedReportType is returned when the requested report type is
// not one of the supported kinds.
var ErrUnsupportedReportType = shared.NewDomainError("UNSUPPORTED_REPORT_TYPE", "Unsupported report type")

// ReportRequest describes a report to generate. StartDate and EndDate
// are inclusive calendar days; optional farm and crop references narrow
// the scope where the report type supports it.
type ReportRequest struct {
	Type      ReportType `json:"reportType"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	FarmID    *uuid.UUID `json:"farmId,omitempty"`
	CropID    *uuid.UUID `json:"cropId,omitempty"`
}

// Validate checks requirements that must hold before any query runs.
// The type must be a supported report kind, and a plot yield report
// cannot be generated without a farm.
func (r ReportRequest) Validate() error {
	if !r.Type.IsValid() {
		return ErrUnsupportedReportType
	}
	if r.Type == ReportTypePlotYield && r.FarmID == nil {
		return ErrFarmIDRequired
	}
	return nil
}

// NormalizedRange widens the requested dates to full days: the start at
// midnight and the end at the last nanosecond of its day, so both
// boundary days are included.
func (r ReportRequest) NormalizedRange() (time.Time, time.Time) {
	start := time.Date(r.StartDate.Year(), r.StartDate.Month(), r.StartDate.Day(), 0, 0, 0, 0, r.StartDate.Location())
	end := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(), 0, 0, 0, 0, r.EndDate.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
