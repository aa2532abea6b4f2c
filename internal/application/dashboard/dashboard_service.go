package dashboard

import (
	"context"
	"time"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardService builds the lightweight widgets shown on the landing
// page: lifetime totals, the current month split and the top crops.
type DashboardService struct {
	queries report.TransactionQueries
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(queries report.TransactionQueries) *DashboardService {
	return &DashboardService{queries: queries}
}

// Summary holds the user's lifetime totals. The three figures come from
// independent queries, so a transaction committed while the summary is
// being built may be reflected in some fields and not others.
type Summary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetBalance       float64 `json:"netBalance"`
	TransactionCount int64   `json:"transactionCount"`
}

// MonthSplit is a chart-ready income vs expense pairing for the current
// month. Labels and Data line up by index.
type MonthSplit struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// TopCropEntry is one crop of the top yields listing
type TopCropEntry struct {
	CropName    string  `json:"cropName"`
	Quantity    float64 `json:"quantity"`
	MeasureUnit string  `json:"measureUnit"`
}

// GetSummary returns the user's lifetime income, expense, balance and
// transaction count. NetBalance is always TotalIncome minus
// TotalExpenses.
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	income, err := s.queries.SumIncome(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.queries.SumExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.queries.CountAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalIncome := zeroIfNil(income)
	totalExpenses := zeroIfNil(expenses)
	return &Summary{
		TotalIncome:      toFloat64(totalIncome),
		TotalExpenses:    toFloat64(totalExpenses),
		NetBalance:       toFloat64(totalIncome.Sub(totalExpenses)),
		TransactionCount: count,
	}, nil
}

// GetCurrentMonthSplit returns the income and expense totals for the
// month containing time.Now in the server's local zone. Users in a zone
// ahead of or behind the server can see a transaction land in the
// neighboring month near the boundary.
func (s *DashboardService) GetCurrentMonthSplit(ctx context.Context, userID uuid.UUID) (*MonthSplit, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	income, err := s.queries.SumIncomeBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.queries.SumExpensesBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return &MonthSplit{
		Labels: []string{"Ingresos", "Egresos"},
		Data: []float64{
			toFloat64(zeroIfNil(income)),
			toFloat64(zeroIfNil(expenses)),
		},
	}, nil
}

// GetTopCropYields returns the store's pre-ranked top crops unchanged,
// in the order the store produced them.
func (s *DashboardService) GetTopCropYields(ctx context.Context, userID uuid.UUID) ([]TopCropEntry, error) {
	rows, err := s.queries.Top5CropsByQuantity(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]TopCropEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, TopCropEntry{
			CropName:    row.CropName,
			Quantity:    toFloat64(row.Quantity),
			MeasureUnit: row.MeasureUnit,
		})
	}
	return entries, nil
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
