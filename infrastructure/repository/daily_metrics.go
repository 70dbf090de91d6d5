package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retention-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

const (
	dailyMetricsTable = "daily_metrics dm"

	dailyMetricsColumns = `dm.id, dm.account_id, dm.date, dm.receipt_count, dm.sales_volume,
		dm.customer_traffic, dm.morning_receipts, dm.swing_receipts, dm.graveyard_receipts,
		dm.morning_sales, dm.swing_sales, dm.graveyard_sales, dm.previous_day_receipt_count,
		dm.previous_day_sales, dm.weekly_avg_receipt_count, dm.weekly_avg_sales,
		dm.transaction_drop_pct, dm.sales_drop_pct, dm.created_at, dm.updated_at`
)

type DailyMetricsRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.DailyMetrics, error)
	ListBeforeDate(accountID string, date time.Time, limit int) ([]*domain.DailyMetrics, error)
	SaveOrUpdate(metrics *domain.DailyMetrics) error
}

type dailyMetricsRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricsRepository(conn *postgres.Connection) DailyMetricsRepository {
	return &dailyMetricsRepository{
		conn: conn,
	}
}

func (r *dailyMetricsRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.DailyMetrics, error) {
	query, args, err := squirrel.
		Select(dailyMetricsColumns).
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.account_id": accountID, "dm.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	metrics, err := r.scanMetrics(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
	}

	return metrics, nil
}

// ListBeforeDate retorna as linhas estritamente anteriores à data de
// referência, da mais recente para a mais antiga, limitadas ao tamanho da
// janela solicitada. Usada pelo cálculo de rollups.
func (r *dailyMetricsRepository) ListBeforeDate(accountID string, date time.Time, limit int) ([]*domain.DailyMetrics, error) {
	query, args, err := squirrel.
		Select(dailyMetricsColumns).
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.account_id": accountID}).
		Where(squirrel.Lt{"dm.date": date.Format(time.DateOnly)}).
		OrderBy("dm.date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.DailyMetrics, 0)
	for rows.Next() {
		metrics, err := r.scanMetricsRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}
		result = append(result, metrics)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *dailyMetricsRepository) SaveOrUpdate(metrics *domain.DailyMetrics) error {
	// Contadores negativos são zerados na borda; o motor de score assume
	// entradas não negativas
	metrics.Normalize()

	query := squirrel.StatementBuilder.
		Insert("daily_metrics").
		Columns(
			"account_id", "date", "receipt_count", "sales_volume", "customer_traffic",
			"morning_receipts", "swing_receipts", "graveyard_receipts",
			"morning_sales", "swing_sales", "graveyard_sales",
			"previous_day_receipt_count", "previous_day_sales",
			"weekly_avg_receipt_count", "weekly_avg_sales",
			"transaction_drop_pct", "sales_drop_pct",
		).
		Values(
			metrics.AccountID,
			metrics.Date.Format(time.DateOnly),
			metrics.ReceiptCount,
			metrics.SalesVolume,
			metrics.CustomerTraffic,
			metrics.MorningReceipts,
			metrics.SwingReceipts,
			metrics.GraveyardReceipts,
			metrics.MorningSales,
			metrics.SwingSales,
			metrics.GraveyardSales,
			metrics.PreviousDayRc,
			metrics.PreviousDaySales,
			metrics.WeeklyAvgRc,
			metrics.WeeklyAvgSales,
			metrics.TransactionDrop,
			metrics.SalesDrop,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				receipt_count = EXCLUDED.receipt_count,
				sales_volume = EXCLUDED.sales_volume,
				customer_traffic = EXCLUDED.customer_traffic,
				morning_receipts = EXCLUDED.morning_receipts,
				swing_receipts = EXCLUDED.swing_receipts,
				graveyard_receipts = EXCLUDED.graveyard_receipts,
				morning_sales = EXCLUDED.morning_sales,
				swing_sales = EXCLUDED.swing_sales,
				graveyard_sales = EXCLUDED.graveyard_sales,
				previous_day_receipt_count = EXCLUDED.previous_day_receipt_count,
				previous_day_sales = EXCLUDED.previous_day_sales,
				weekly_avg_receipt_count = EXCLUDED.weekly_avg_receipt_count,
				weekly_avg_sales = EXCLUDED.weekly_avg_sales,
				transaction_drop_pct = EXCLUDED.transaction_drop_pct,
				sales_drop_pct = EXCLUDED.sales_drop_pct,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyMetricsRepository) scanMetrics(row *sql.Row) (*domain.DailyMetrics, error) {
	metrics := &domain.DailyMetrics{}

	err := row.Scan(
		&metrics.ID,
		&metrics.AccountID,
		&metrics.Date,
		&metrics.ReceiptCount,
		&metrics.SalesVolume,
		&metrics.CustomerTraffic,
		&metrics.MorningReceipts,
		&metrics.SwingReceipts,
		&metrics.GraveyardReceipts,
		&metrics.MorningSales,
		&metrics.SwingSales,
		&metrics.GraveyardSales,
		&metrics.PreviousDayRc,
		&metrics.PreviousDaySales,
		&metrics.WeeklyAvgRc,
		&metrics.WeeklyAvgSales,
		&metrics.TransactionDrop,
		&metrics.SalesDrop,
		&metrics.CreatedAt,
		&metrics.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func (r *dailyMetricsRepository) scanMetricsRows(rows *sql.Rows) (*domain.DailyMetrics, error) {
	metrics := &domain.DailyMetrics{}

	err := rows.Scan(
		&metrics.ID,
		&metrics.AccountID,
		&metrics.Date,
		&metrics.ReceiptCount,
		&metrics.SalesVolume,
		&metrics.CustomerTraffic,
		&metrics.MorningReceipts,
		&metrics.SwingReceipts,
		&metrics.GraveyardReceipts,
		&metrics.MorningSales,
		&metrics.SwingSales,
		&metrics.GraveyardSales,
		&metrics.PreviousDayRc,
		&metrics.PreviousDaySales,
		&metrics.WeeklyAvgRc,
		&metrics.WeeklyAvgSales,
		&metrics.TransactionDrop,
		&metrics.SalesDrop,
		&metrics.CreatedAt,
		&metrics.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}
