package persistence

import (
	"context"
	"time"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/farm"
	"github.com/brutchm/proyecto-3-back-end-sub000/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTransactionQueries implements report.TransactionQueries using GORM.
// Summed columns are scanned into pointers so a NULL aggregate survives
// the trip; defaulting happens in the application layer.
type GormTransactionQueries struct {
	db *gorm.DB
}

// NewGormTransactionQueries creates a new transaction query repository
func NewGormTransactionQueries(db *gorm.DB) *GormTransactionQueries {
	return &GormTransactionQueries{db: db}
}

// SumIncome returns the all-time income total for the user
func (r *GormTransactionQueries) SumIncome(ctx context.Context, userID uuid.UUID) (*decimal.Decimal, error) {
	return r.sumByType(ctx, userID, farm.TransactionTypeIncome, nil, nil)
}

// SumExpenses returns the all-time expense total for the user
func (r *GormTransactionQueries) SumExpenses(ctx context.Context, userID uuid.UUID) (*decimal.Decimal, error) {
	return r.sumByType(ctx, userID, farm.TransactionTypeExpense, nil, nil)
}

// SumIncomeBetween returns the income total inside the date range
func (r *GormTransactionQueries) SumIncomeBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (*decimal.Decimal, error) {
	return r.sumByType(ctx, userID, farm.TransactionTypeIncome, &start, &end)
}

// SumExpensesBetween returns the expense total inside the date range
func (r *GormTransactionQueries) SumExpensesBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (*decimal.Decimal, error) {
	return r.sumByType(ctx, userID, farm.TransactionTypeExpense, &start, &end)
}

func (r *GormTransactionQueries) sumByType(ctx context.Context, userID uuid.UUID, txType farm.TransactionType, start, end *time.Time) (*decimal.Decimal, error) {
	var row struct {
		Total *decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select("SUM(t.value) as total").
		Where("t.user_id = ? AND t.type = ?", userID, txType)

	if start != nil && end != nil {
		query = query.Where("t.transaction_date BETWEEN ? AND ?", *start, *end)
	}

	if err := query.Scan(&row).Error; err != nil {
		return nil, err
	}
	return row.Total, nil
}

// CountAll returns the total number of transactions for the user
func (r *GormTransactionQueries) CountAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("transactions").
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// GroupByMonth returns income and expense totals bucketed by month.
// A month where only one type occurred carries NULL for the other sum.
func (r *GormTransactionQueries) GroupByMonth(ctx context.Context, filter report.ReportFilter) ([]report.MonthlyIncomeExpenseRow, error) {
	var raw []struct {
		Year    int
		Month   int
		Income  *decimal.Decimal
		Expense *decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select(`EXTRACT(YEAR FROM t.transaction_date)::int as year,
			EXTRACT(MONTH FROM t.transaction_date)::int as month,
			SUM(CASE WHEN t.type = 'INCOME' THEN t.value END) as income,
			SUM(CASE WHEN t.type = 'EXPENSE' THEN t.value END) as expense`).
		Where("t.user_id = ?", filter.UserID).
		Where("t.transaction_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)

	if filter.FarmID != nil {
		query = query.Where("t.farm_id = ?", *filter.FarmID)
	}
	if filter.CropID != nil {
		query = query.Where("t.crop_id = ?", *filter.CropID)
	}

	err := query.
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.MonthlyIncomeExpenseRow, 0, len(raw))
	for _, item := range raw {
		rows = append(rows, report.MonthlyIncomeExpenseRow{
			Month:   monthKey(item.Year, item.Month),
			Income:  item.Income,
			Expense: item.Expense,
		})
	}
	return rows, nil
}

// GroupCostsByMonth returns expense totals bucketed by month
func (r *GormTransactionQueries) GroupCostsByMonth(ctx context.Context, filter report.ReportFilter) ([]report.MonthlyCostRow, error) {
	var raw []struct {
		Year  int
		Month int
		Cost  *decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select(`EXTRACT(YEAR FROM t.transaction_date)::int as year,
			EXTRACT(MONTH FROM t.transaction_date)::int as month,
			SUM(t.value) as cost`).
		Where("t.user_id = ? AND t.type = ?", filter.UserID, farm.TransactionTypeExpense).
		Where("t.transaction_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)

	if filter.FarmID != nil {
		query = query.Where("t.farm_id = ?", *filter.FarmID)
	}
	if filter.CropID != nil {
		query = query.Where("t.crop_id = ?", *filter.CropID)
	}

	err := query.
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.MonthlyCostRow, 0, len(raw))
	for _, item := range raw {
		rows = append(rows, report.MonthlyCostRow{
			Month: monthKey(item.Year, item.Month),
			Cost:  item.Cost,
		})
	}
	return rows, nil
}

// GroupByCrop returns sold quantity, income and expense totals per
// crop. Crops without transactions in the range still appear, with
// NULL sums.
func (r *GormTransactionQueries) GroupByCrop(ctx context.Context, filter report.ReportFilter) ([]report.CropYieldRow, error) {
	var raw []struct {
		CropName    string
		Quantity    *decimal.Decimal
		MeasureUnit string
		Income      *decimal.Decimal
		Expense     *decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Table("crops c").
		Select(`c.name as crop_name, c.measure_unit as measure_unit,
			SUM(CASE WHEN t.type = 'INCOME' THEN t.quantity END) as quantity,
			SUM(CASE WHEN t.type = 'INCOME' THEN t.value END) as income,
			SUM(CASE WHEN t.type = 'EXPENSE' THEN t.value END) as expense`).
		Joins("JOIN plots p ON p.id = c.plot_id").
		Joins("JOIN farms f ON f.id = p.farm_id").
		Joins("LEFT JOIN transactions t ON t.crop_id = c.id AND t.transaction_date BETWEEN ? AND ?",
			filter.StartDate, filter.EndDate).
		Where("f.user_id = ?", filter.UserID)

	if filter.FarmID != nil {
		query = query.Where("f.id = ?", *filter.FarmID)
	}
	if filter.CropID != nil {
		query = query.Where("c.id = ?", *filter.CropID)
	}

	err := query.
		Group("c.id, c.name, c.measure_unit").
		Order("c.name ASC").
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.CropYieldRow, 0, len(raw))
	for _, item := range raw {
		rows = append(rows, report.CropYieldRow{
			CropName:    item.CropName,
			Quantity:    item.Quantity,
			MeasureUnit: item.MeasureUnit,
			Income:      item.Income,
			Expense:     item.Expense,
		})
	}
	return rows, nil
}

// GroupCostsByCrop returns expense totals per crop
func (r *GormTransactionQueries) GroupCostsByCrop(ctx context.Context, filter report.ReportFilter) ([]report.CropCostRow, error) {
	var rows []report.CropCostRow

	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select("c.name as crop_name, SUM(t.value) as cost").
		Joins("JOIN crops c ON c.id = t.crop_id").
		Joins("JOIN plots p ON p.id = c.plot_id").
		Joins("JOIN farms f ON f.id = p.farm_id").
		Where("t.user_id = ? AND t.type = ?", filter.UserID, farm.TransactionTypeExpense).
		Where("t.transaction_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)

	if filter.FarmID != nil {
		query = query.Where("f.id = ?", *filter.FarmID)
	}
	if filter.CropID != nil {
		query = query.Where("c.id = ?", *filter.CropID)
	}

	err := query.
		Group("c.id, c.name").
		Order("c.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GroupByPlot returns quantities sold per plot and crop inside the
// date range. Plantings without sales in the range still appear, with
// a NULL quantity.
func (r *GormTransactionQueries) GroupByPlot(ctx context.Context, filter report.ReportFilter) ([]report.PlotYieldRow, error) {
	var rows []report.PlotYieldRow

	query := r.db.WithContext(ctx).
		Table("plots p").
		Select(`p.name as plot_name, c.name as crop_name, c.measure_unit as measure_unit,
			SUM(CASE WHEN t.type = 'INCOME' THEN t.quantity END) as quantity`).
		Joins("JOIN crops c ON c.plot_id = p.id").
		Joins("JOIN farms f ON f.id = p.farm_id").
		Joins("LEFT JOIN transactions t ON t.crop_id = c.id AND t.transaction_date BETWEEN ? AND ?",
			filter.StartDate, filter.EndDate).
		Where("f.user_id = ?", filter.UserID)

	if filter.FarmID != nil {
		query = query.Where("f.id = ?", *filter.FarmID)
	}
	if filter.CropID != nil {
		query = query.Where("c.id = ?", *filter.CropID)
	}

	err := query.
		Group("p.id, p.name, c.id, c.name, c.measure_unit").
		Order("p.name ASC, c.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GroupByFarm returns expense totals per farm across all the user's
// farms. Farms with no expenses in the range come back with a NULL cost.
func (r *GormTransactionQueries) GroupByFarm(ctx context.Context, filter report.ReportFilter) ([]report.FarmCostRow, error) {
	var rows []report.FarmCostRow

	err := r.db.WithContext(ctx).
		Table("farms f").
		Select("f.name as farm_name, SUM(t.value) as cost").
		Joins("LEFT JOIN transactions t ON t.farm_id = f.id AND t.type = ? AND t.transaction_date BETWEEN ? AND ?",
			farm.TransactionTypeExpense, filter.StartDate, filter.EndDate).
		Where("f.user_id = ?", filter.UserID).
		Group("f.id, f.name").
		Order("f.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Top5CropsByQuantity returns the user's five best selling crops by
// all-time quantity sold. Crops with no sales never rank.
func (r *GormTransactionQueries) Top5CropsByQuantity(ctx context.Context, userID uuid.UUID) ([]report.TopCropRow, error) {
	var rows []report.TopCropRow

	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select("c.name as crop_name, c.measure_unit as measure_unit, SUM(t.quantity) as quantity").
		Joins("JOIN crops c ON c.id = t.crop_id").
		Where("t.user_id = ? AND t.type = ?", userID, farm.TransactionTypeIncome).
		Group("c.id, c.name, c.measure_unit").
		Order("quantity DESC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// monthKey formats a year and month pair as "YYYY-MM"
func monthKey(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
