package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retention-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

const (
	riskAssessmentsTable = "risk_assessments ra"

	riskAssessmentColumns = "ra.id, ra.account_id, ra.for_date, ra.created_at, ra.risk_score, ra.risk_percentage, ra.level, ra.description, ra.factors"
)

// RiskAssessmentRepository é o ledger de avaliações: apenas insere e lê,
// nunca atualiza ou remove. Reexecuções para o mesmo for_date criam novas
// linhas e os leitores escolhem sempre a de created_at mais recente.
type RiskAssessmentRepository interface {
	Insert(assessment *domain.RiskAssessment) (*domain.RiskAssessment, error)
	GetLatestByDate(accountID string, forDate time.Time) (*domain.RiskAssessment, error)
	GetLatestOverall(accountID string) (*domain.RiskAssessment, error)
	ListLatestPerDateBetween(accountID string, startDate, endDate time.Time) ([]*domain.RiskAssessment, error)
	ListByAccountID(accountID string, limit int) ([]*domain.RiskAssessment, error)
}

type riskAssessmentRepository struct {
	conn *postgres.Connection
}

func NewRiskAssessmentRepository(conn *postgres.Connection) RiskAssessmentRepository {
	return &riskAssessmentRepository{
		conn: conn,
	}
}

func (r *riskAssessmentRepository) Insert(assessment *domain.RiskAssessment) (*domain.RiskAssessment, error) {
	factorsJSON, err := json.Marshal(assessment.Factors)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar fatores para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("risk_assessments").
		Columns("account_id", "for_date", "risk_score", "risk_percentage", "level", "description", "factors").
		Values(
			assessment.AccountID,
			assessment.ForDate.Format(time.DateOnly),
			assessment.RiskScore,
			assessment.RiskPercentage,
			string(assessment.Level),
			assessment.Description,
			factorsJSON,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&assessment.ID, &assessment.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return assessment, nil
}

// GetLatestByDate retorna a avaliação de created_at mais recente para o
// for_date exato, ou nil quando o dia nunca foi avaliado.
func (r *riskAssessmentRepository) GetLatestByDate(accountID string, forDate time.Time) (*domain.RiskAssessment, error) {
	query, args, err := squirrel.
		Select(riskAssessmentColumns).
		From(riskAssessmentsTable).
		Where(squirrel.Eq{"ra.account_id": accountID, "ra.for_date": forDate.Format(time.DateOnly)}).
		OrderBy("ra.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	assessment, err := r.scanAssessment(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear avaliação de risco: %w", err)
	}

	return assessment, nil
}

// GetLatestOverall retorna a avaliação mais recente da conta: maior for_date
// e, dentro dele, maior created_at.
func (r *riskAssessmentRepository) GetLatestOverall(accountID string) (*domain.RiskAssessment, error) {
	query, args, err := squirrel.
		Select(riskAssessmentColumns).
		From(riskAssessmentsTable).
		Where(squirrel.Eq{"ra.account_id": accountID}).
		OrderBy("ra.for_date DESC", "ra.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	assessment, err := r.scanAssessment(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear avaliação de risco: %w", err)
	}

	return assessment, nil
}

// ListLatestPerDateBetween retorna uma avaliação por dia no intervalo
// (a de created_at mais recente de cada for_date), da mais recente para a
// mais antiga.
func (r *riskAssessmentRepository) ListLatestPerDateBetween(accountID string, startDate, endDate time.Time) ([]*domain.RiskAssessment, error) {
	query, args, err := squirrel.
		Select(riskAssessmentColumns).
		Options("DISTINCT ON (ra.for_date)").
		From(riskAssessmentsTable).
		Where(squirrel.Eq{"ra.account_id": accountID}).
		Where(squirrel.GtOrEq{"ra.for_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ra.for_date": endDate.Format(time.DateOnly)}).
		OrderBy("ra.for_date DESC", "ra.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAssessments(query, args)
}

func (r *riskAssessmentRepository) ListByAccountID(accountID string, limit int) ([]*domain.RiskAssessment, error) {
	builder := squirrel.
		Select(riskAssessmentColumns).
		From(riskAssessmentsTable).
		Where(squirrel.Eq{"ra.account_id": accountID}).
		OrderBy("ra.for_date DESC", "ra.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAssessments(query, args)
}

func (r *riskAssessmentRepository) queryAssessments(query string, args []interface{}) ([]*domain.RiskAssessment, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	assessments := make([]*domain.RiskAssessment, 0)
	for rows.Next() {
		assessment, err := r.scanAssessmentRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear avaliações de risco: %w", err)
		}
		assessments = append(assessments, assessment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return assessments, nil
}

func (r *riskAssessmentRepository) scanAssessment(row *sql.Row) (*domain.RiskAssessment, error) {
	assessment := &domain.RiskAssessment{}
	var factorsJSON []byte

	err := row.Scan(
		&assessment.ID,
		&assessment.AccountID,
		&assessment.ForDate,
		&assessment.CreatedAt,
		&assessment.RiskScore,
		&assessment.RiskPercentage,
		&assessment.Level,
		&assessment.Description,
		&factorsJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalFactors(factorsJSON, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

func (r *riskAssessmentRepository) scanAssessmentRows(rows *sql.Rows) (*domain.RiskAssessment, error) {
	assessment := &domain.RiskAssessment{}
	var factorsJSON []byte

	err := rows.Scan(
		&assessment.ID,
		&assessment.AccountID,
		&assessment.ForDate,
		&assessment.CreatedAt,
		&assessment.RiskScore,
		&assessment.RiskPercentage,
		&assessment.Level,
		&assessment.Description,
		&factorsJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalFactors(factorsJSON, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

func unmarshalFactors(factorsJSON []byte, assessment *domain.RiskAssessment) error {
	if factorsJSON == nil {
		assessment.Factors = []string{}
		return nil
	}

	factors := make([]string, 0)
	if err := json.Unmarshal(factorsJSON, &factors); err != nil {
		return fmt.Errorf("erro ao deserializar JSON de factors: %w", err)
	}
	assessment.Factors = factors

	return nil
}
