package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate rows scanned straight from the database. Summed columns are
// pointers: a grouping bucket with no matching transactions comes back
// as NULL and stays nil here. Defaulting nil to zero is the caller's
// job, applied in one place, never in SQL.

// MonthlyIncomeExpenseRow holds income and expense totals for one month
// bucket in "YYYY-MM" form.
type MonthlyIncomeExpenseRow struct {
	Month   string           `json:"month"`
	Income  *decimal.Decimal `json:"income"`
	Expense *decimal.Decimal `json:"expense"`
}

// MonthlyCostRow holds the expense total for one month bucket
type MonthlyCostRow struct {
	Month string           `json:"month"`
	Cost  *decimal.Decimal `json:"cost"`
}

// CropYieldRow holds per-crop sold quantity and money totals
type CropYieldRow struct {
	CropName    string           `json:"cropName"`
	Quantity    *decimal.Decimal `json:"quantity"`
	MeasureUnit string           `json:"measureUnit"`
	Income      *decimal.Decimal `json:"income"`
	Expense     *decimal.Decimal `json:"expense"`
}

// PlotYieldRow holds sold quantity per plot and crop
type PlotYieldRow struct {
	PlotName    string           `json:"plotName"`
	CropName    string           `json:"cropName"`
	Quantity    *decimal.Decimal `json:"quantity"`
	MeasureUnit string           `json:"measureUnit"`
}

// CropCostRow holds the expense total per crop
type CropCostRow struct {
	CropName string           `json:"cropName"`
	Cost     *decimal.Decimal `json:"cost"`
}

// FarmCostRow holds the expense total per farm
type FarmCostRow struct {
	FarmName string           `json:"farmName"`
	Cost     *decimal.Decimal `json:"cost"`
}

// TopCropRow is one entry of the pre-ranked top crops listing
type TopCropRow struct {
	CropName    string          `json:"cropName"`
	Quantity    decimal.Decimal `json:"quantity"`
	MeasureUnit string          `json:"measureUnit"`
}

// ReportFilter carries the scope for grouped report queries. UserID is
// always present; FarmID and CropID narrow the result when set.
type ReportFilter struct {
	UserID    uuid.UUID  `json:"-"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	FarmID    *uuid.UUID `json:"farmId,omitempty"`
	CropID    *uuid.UUID `json:"cropId,omitempty"`
}

// TransactionQueries defines the read-side aggregation queries over a
// user's transactions. Grouped results come back in the store's own
// order and callers must not re-sort them.
type TransactionQueries interface {
	// SumIncome returns the all-time income total for the user, nil when
	// the user has no income transactions
	SumIncome(ctx context.Context, userID uuid.UUID) (*decimal.Decimal, error)

	// SumExpenses returns the all-time expense total for the user, nil
	// when the user has no expense transactions
	SumExpenses(ctx context.Context, userID uuid.UUID) (*decimal.Decimal, error)

	// SumIncomeBetween returns the income total inside the date range
	SumIncomeBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (*decimal.Decimal, error)

	// SumExpensesBetween returns the expense total inside the date range
	SumExpensesBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (*decimal.Decimal, error)

	// CountAll returns the total number of transactions for the user
	CountAll(ctx context.Context, userID uuid.UUID) (int64, error)

	// GroupByMonth returns income and expense totals bucketed by month
	GroupByMonth(ctx context.Context, filter ReportFilter) ([]MonthlyIncomeExpenseRow, error)

	// GroupCostsByMonth returns expense totals bucketed by month
	GroupCostsByMonth(ctx context.Context, filter ReportFilter) ([]MonthlyCostRow, error)

	// GroupByCrop returns sold quantity, income and expense totals per
	// crop inside the date range
	GroupByCrop(ctx context.Context, filter ReportFilter) ([]CropYieldRow, error)

	// GroupCostsByCrop returns expense totals per crop
	GroupCostsByCrop(ctx context.Context, filter ReportFilter) ([]CropCostRow, error)

	// GroupByPlot returns quantities sold per plot and crop inside the
	// date range, scoped to the filter's farm
	GroupByPlot(ctx context.Context, filter ReportFilter) ([]PlotYieldRow, error)

	// GroupByFarm returns expense totals per farm across all the user's
	// farms, ignoring farm and crop filters
	GroupByFarm(ctx context.Context, filter ReportFilter) ([]FarmCostRow, error)

	// Top5CropsByQuantity returns the user's five best selling crops by
	// all-time quantity sold, already ranked by the store
	Top5CropsByQuantity(ctx context.Context, userID uuid.UUID) ([]TopCropRow, error)
}
