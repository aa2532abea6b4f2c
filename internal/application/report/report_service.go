package report

import (
	"context"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService generates aggregation reports over a user's
// transactions. It owns dispatch and request validation; the store only
// runs queries.
type ReportService struct {
	queries report.TransactionQueries
}

// NewReportService creates a new report service
func NewReportService(queries report.TransactionQueries) *ReportService {
	return &ReportService{queries: queries}
}

// ===================== Response DTOs =====================

// GeneratedReport is the envelope for any report kind. Rows holds the
// entry slice for the requested type.
type GeneratedReport struct {
	Type      report.ReportType `json:"reportType"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Rows      any               `json:"rows"`
}

// MonthlyIncomeExpenseEntry is one month bucket of the income vs
// expenses report
type MonthlyIncomeExpenseEntry struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// CropYieldEntry is one crop of the crop yield report. NetProfit is
// derived from the defaulted income and expense totals.
type CropYieldEntry struct {
	CropName    string  `json:"cropName"`
	Quantity    float64 `json:"quantity"`
	MeasureUnit string  `json:"measureUnit"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	NetProfit   float64 `json:"netProfit"`
}

// PlotYieldEntry is one plot and crop pairing of the plot yield report
type PlotYieldEntry struct {
	PlotName    string  `json:"plotName"`
	CropName    string  `json:"cropName"`
	Quantity    float64 `json:"quantity"`
	MeasureUnit string  `json:"measureUnit"`
}

// MonthlyCostEntry is one month bucket of the operational costs report
type MonthlyCostEntry struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}

// CropCostEntry is one crop of the crop costs report
type CropCostEntry struct {
	CropName string  `json:"cropName"`
	Cost     float64 `json:"cost"`
}

// FarmCostEntry is one farm of the farm costs report
type FarmCostEntry struct {
	FarmName string  `json:"farmName"`
	Cost     float64 `json:"cost"`
}

// ===================== Report Generation =====================

// GenerateReport validates the request, runs the query for the
// requested report type and maps rows to response entries. Validation
// failures return before any store call. Rows keep the store's order.
func (s *ReportService) GenerateReport(ctx context.Context, userID uuid.UUID, req report.ReportRequest) (*GeneratedReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end := req.NormalizedRange()
	filter := report.ReportFilter{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		FarmID:    req.FarmID,
		CropID:    req.CropID,
	}

	result := &GeneratedReport{
		Type:      req.Type,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}

	switch req.Type {
	case report.ReportTypeIncomeVsExpenses:
		rows, err := s.queries.GroupByMonth(ctx, filter)
		if err != nil {
			return nil, err
		}
		entries := make([]MonthlyIncomeExpenseEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, MonthlyIncomeExpenseEntry{
				Month:    row.Month,
				Income:   toFloat64(zeroIfNil(row.Income)),
				Expenses: toFloat64(zeroIfNil(row.Expense)),
			})
		}
		result.Rows = entries

	case report.ReportTypeCropYield:
		rows, err := s.queries.GroupByCrop(ctx, filter)
		if err != nil {
			return nil, err
		}
		entries := make([]CropYieldEntry, 0, len(rows))
		for _, row := range rows {
			income := zeroIfNil(row.Income)
			expenses := zeroIfNil(row.Expense)
			entries = append(entries, CropYieldEntry{
				CropName:    row.CropName,
				Quantity:    toFloat64(zeroIfNil(row.Quantity)),
				MeasureUnit: row.MeasureUnit,
				Income:      toFloat64(income),
				Expenses:    toFloat64(expenses),
				NetProfit:   toFloat64(income.Sub(expenses)),
			})
		}
		result.Rows = entries

	case report.ReportTypeOperationalCosts:
		rows, err := s.queries.GroupCostsByMonth(ctx, filter)
		if err != nil {
			return nil, err
		}
		entries := make([]MonthlyCostEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, MonthlyCostEntry{
				Month: row.Month,
				Cost:  toFloat64(zeroIfNil(row.Cost)),
			})
		}
		result.Rows = entries

	case report.ReportTypePlotYield:
		rows, err := s.queries.GroupByPlot(ctx, filter)
		if err != nil {
			return nil, err
		}
		entries := make([]PlotYieldEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, PlotYieldEntry{
				PlotName:    row.PlotName,
				CropName:    row.CropName,
				Quantity:    toFloat64(zeroIfNil(row.Quantity)),
				MeasureUnit: row.MeasureUnit,
			})
		}
		result.Rows = entries

	case report.ReportTypeCropCosts:
		rows, err := s.queries.GroupCostsByCrop(ctx, filter)
		if err != nil {
			return nil, err
		}
		entries := make([]CropCostEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, CropCostEntry{
				CropName: row.CropName,
				Cost:     toFloat64(zeroIfNil(row.Cost)),
			})
		}
		result.Rows = entries

	case report.ReportTypeFarmCosts:
		rows, err := s.queries.GroupByFarm(ctx, filter)
		if err != nil {
			return nil, err
		}
		entries := make([]FarmCostEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, FarmCostEntry{
				FarmName: row.FarmName,
				Cost:     toFloat64(zeroIfNil(row.Cost)),
			})
		}
		result.Rows = entries

	default:
		return nil, report.ErrUnsupportedReportType
	}

	return result, nil
}

// zeroIfNil is the single defaulting step for nullable aggregates:
// a NULL sum from the store becomes 0.
func zeroIfNil(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// toFloat64 converts a decimal to float64 for JSON responses
func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
