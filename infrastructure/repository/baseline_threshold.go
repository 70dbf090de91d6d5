package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retention-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

const (
	baselineThresholdsTable = "baseline_thresholds bt"
)

type BaselineThresholdRepository interface {
	GetByAccountID(accountID string) (*domain.BaselineThresholds, error)
	SaveOrUpdate(thresholds *domain.BaselineThresholds) error
}

type baselineThresholdRepository struct {
	conn *postgres.Connection
}

func NewBaselineThresholdRepository(conn *postgres.Connection) BaselineThresholdRepository {
	return &baselineThresholdRepository{
		conn: conn,
	}
}

func (r *baselineThresholdRepository) GetByAccountID(accountID string) (*domain.BaselineThresholds, error) {
	query, args, err := squirrel.
		Select("bt.account_id, bt.baseline_sales, bt.baseline_traffic, bt.baseline_receipts, bt.created_at, bt.updated_at").
		From(baselineThresholdsTable).
		Where(squirrel.Eq{"bt.account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	thresholds := &domain.BaselineThresholds{}
	err = r.conn.QueryRow(query, args...).Scan(
		&thresholds.AccountID,
		&thresholds.BaselineSales,
		&thresholds.BaselineTraffic,
		&thresholds.BaselineReceipts,
		&thresholds.CreatedAt,
		&thresholds.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear baseline thresholds: %w", err)
	}

	return thresholds, nil
}

func (r *baselineThresholdRepository) SaveOrUpdate(thresholds *domain.BaselineThresholds) error {
	query := squirrel.StatementBuilder.
		Insert("baseline_thresholds").
		Columns("account_id", "baseline_sales", "baseline_traffic", "baseline_receipts").
		Values(
			thresholds.AccountID,
			thresholds.BaselineSales,
			thresholds.BaselineTraffic,
			thresholds.BaselineReceipts,
		).
		Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				baseline_sales = EXCLUDED.baseline_sales,
				baseline_traffic = EXCLUDED.baseline_traffic,
				baseline_receipts = EXCLUDED.baseline_receipts,
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
