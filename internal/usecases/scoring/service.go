package scoring

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository"
	"github.com/vfg2006/retention-radar-api/internal/config"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

// Pesos da combinação híbrida: 70% score de limiar, 30% score de padrões.
const (
	thresholdWeight = 0.70
	patternWeight   = 0.30
)

// Scorer produz avaliações de risco de churn a partir das métricas diárias.
// Score é puro; AssessAccount busca o contexto nos repositórios, pontua e
// registra o resultado no ledger.
type Scorer interface {
	Score(metrics *domain.DailyMetrics, baselines *domain.BaselineThresholds, rollup domain.RollupStats) *domain.RiskAssessment
	AssessAccount(accountID string, referenceDate time.Time) (*domain.RiskAssessment, error)
	ResolveBaselines(accountID string) *domain.BaselineThresholds
	Rollup(accountID string, referenceDate time.Time) domain.RollupStats
	IngestMetrics(metrics *domain.DailyMetrics) error
	SaveBaselines(thresholds *domain.BaselineThresholds) error
	History(accountID string, limit int) ([]*domain.RiskAssessment, error)
	HistoryBetween(accountID string, startDate, endDate time.Time) ([]*domain.RiskAssessment, error)
}

type Service struct {
	metricsRepo  repository.DailyMetricsRepository
	baselineRepo repository.BaselineThresholdRepository
	ledgerRepo   repository.RiskAssessmentRepository
	cfg          *config.Config
}

func NewService(
	metricsRepo repository.DailyMetricsRepository,
	baselineRepo repository.BaselineThresholdRepository,
	ledgerRepo repository.RiskAssessmentRepository,
	cfg *config.Config,
) Scorer {
	return &Service{
		metricsRepo:  metricsRepo,
		baselineRepo: baselineRepo,
		ledgerRepo:   ledgerRepo,
		cfg:          cfg,
	}
}

// ResolveBaselines retorna o override da conta quando existe e tem
// baseline_sales positivo; caso contrário, o perfil padrão configurado.
// Nunca falha: erro de leitura cai no perfil padrão.
func (s *Service) ResolveBaselines(accountID string) *domain.BaselineThresholds {
	stored, err := s.baselineRepo.GetByAccountID(accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("Erro ao buscar baseline da conta, usando perfil padrão")
	}

	if stored != nil && stored.BaselineSales > 0 {
		return stored
	}

	return &domain.BaselineThresholds{
		AccountID:        accountID,
		BaselineSales:    s.cfg.Scoring.DefaultBaselineSales,
		BaselineTraffic:  s.cfg.Scoring.DefaultBaselineTraffic,
		BaselineReceipts: s.cfg.Scoring.DefaultBaselineReceipts,
		IsDefault:        true,
	}
}

// Rollup calcula as médias da janela móvel sobre as linhas estritamente
// anteriores à data de referência. Erro de leitura vira rollup vazio
// (Days == 0), que desarma as regras de declínio a jusante.
func (s *Service) Rollup(accountID string, referenceDate time.Time) domain.RollupStats {
	window := s.cfg.Scoring.RollupWindowDays
	if window <= 0 {
		window = 14
	}

	rows, err := s.metricsRepo.ListBeforeDate(accountID, referenceDate, window)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("Erro ao buscar janela de métricas para rollup")
		return domain.RollupStats{}
	}

	return domain.NewRollupStats(rows)
}

// Score combina o score de limiar e o score de padrões em um risco limitado
// a [0,1], classifica o nível e anexa a narrativa e os fatores. Função total:
// qualquer entrada bem tipada produz uma avaliação.
func (s *Service) Score(metrics *domain.DailyMetrics, baselines *domain.BaselineThresholds, rollup domain.RollupStats) *domain.RiskAssessment {
	// Cópia defensiva: contadores negativos são zerados na borda
	normalized := *metrics
	normalized.Normalize()

	thresholds := thresholdScore(&normalized, baselines)
	patterns := patternScore(&normalized, rollup)

	riskScore := clamp01(thresholdWeight*thresholds.Total() + patternWeight*patterns.Total())
	level := domain.ClassifyRiskLevel(riskScore)

	riskPercentage := riskScore * 100
	if riskPercentage > 100 {
		riskPercentage = 100
	}

	return &domain.RiskAssessment{
		AccountID:      normalized.AccountID,
		ForDate:        normalized.Date,
		RiskScore:      riskScore,
		RiskPercentage: riskPercentage,
		Level:          level,
		Description:    buildDescription(level, thresholds.SalesPct, normalized.HasActivity()),
		Factors:        buildFactors(&normalized, baselines, rollup, thresholds, patterns),
	}
}

// AssessAccount pontua uma conta para a data de referência e registra o
// resultado no ledger. Dia sem linha de métricas é avaliado como placeholder
// de atividade zero, o que o resolvedor de fallback rebaixa na leitura.
func (s *Service) AssessAccount(accountID string, referenceDate time.Time) (*domain.RiskAssessment, error) {
	metrics, err := s.metricsRepo.GetByAccountIDAndDate(accountID, referenceDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       referenceDate.Format(time.DateOnly),
		}).Warn("Erro ao buscar métricas do dia, avaliando como dia sem dados")
	}

	if metrics == nil {
		metrics = &domain.DailyMetrics{
			AccountID: accountID,
			Date:      referenceDate,
		}
	}

	baselines := s.ResolveBaselines(accountID)
	rollup := s.Rollup(accountID, referenceDate)

	assessment := s.Score(metrics, baselines, rollup)

	stored, err := s.ledgerRepo.Insert(assessment)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"for_date":   referenceDate.Format(time.DateOnly),
		"risk_score": stored.RiskScore,
		"level":      stored.Level,
	}).Debug("Avaliação de risco registrada no ledger")

	return stored, nil
}

// IngestMetrics normaliza e grava os contadores do dia. Um segundo envio
// para o mesmo (conta, data) substitui a linha anterior.
func (s *Service) IngestMetrics(metrics *domain.DailyMetrics) error {
	if metrics.AccountID == "" {
		return ErrAccountIDRequired
	}

	if metrics.Date.IsZero() {
		return ErrMetricsDateRequired
	}

	metrics.Normalize()

	return s.metricsRepo.SaveOrUpdate(metrics)
}

// SaveBaselines grava o override de baseline da conta.
func (s *Service) SaveBaselines(thresholds *domain.BaselineThresholds) error {
	if thresholds.AccountID == "" {
		return ErrAccountIDRequired
	}

	if thresholds.BaselineSales <= 0 || thresholds.BaselineTraffic <= 0 || thresholds.BaselineReceipts <= 0 {
		return ErrInvalidBaselines
	}

	thresholds.IsDefault = false

	return s.baselineRepo.SaveOrUpdate(thresholds)
}

// History lista as avaliações mais recentes da conta, em ordem decrescente
// de data.
func (s *Service) History(accountID string, limit int) ([]*domain.RiskAssessment, error) {
	if limit <= 0 {
		limit = 30
	}

	return s.ledgerRepo.ListByAccountID(accountID, limit)
}

// HistoryBetween lista a última avaliação de cada dia do intervalo.
func (s *Service) HistoryBetween(accountID string, startDate, endDate time.Time) ([]*domain.RiskAssessment, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	return s.ledgerRepo.ListLatestPerDateBetween(accountID, startDate, endDate)
}
