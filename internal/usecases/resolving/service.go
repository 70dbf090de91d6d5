// Package resolving implementa a cascata de fallback que responde "qual é o
// risco/retenção agora" mesmo quando a avaliação do dia pedido não existe.
// As estratégias são tentadas em ordem e a primeira resposta vence; ausência
// total de dados produz o estado terminal com confiança zero, nunca erro.
package resolving

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

const (
	exactMatchConfidence            = 0.95
	exactMatchNoDataConfidence      = 0.4
	anyAvailableRiskConfidence      = 0.5
	anyAvailableRetentionConfidence = 0.6

	// Janela da camada RECENT_WINDOW para retenção e mínimo de pontos
	recentRetentionWindowDays = 7
	recentRetentionMinPoints  = 3

	// Janela da camada RECENT_WINDOW para risco (estritamente menos de 3 dias)
	recentRiskWindowDays = 3
	recentRiskMaxPoints  = 3
)

type Resolver interface {
	ResolveRisk(accountID string, date time.Time) *domain.RiskQueryResult
	ResolveRetention(accountID string, date time.Time) *domain.RiskQueryResult
	Trend(accountID string, date time.Time) *domain.TrendDelta
}

// strategy é uma função pura sobre um snapshot do ledger e das métricas:
// retorna nil para indicar "sem resposta, tente a próxima camada". Erros de
// leitura são tratados como ausência de linhas, nunca propagados.
type strategy func(accountID string, date time.Time) *domain.RiskQueryResult

type Service struct {
	ledgerRepo  repository.RiskAssessmentRepository
	metricsRepo repository.DailyMetricsRepository
}

func NewService(
	ledgerRepo repository.RiskAssessmentRepository,
	metricsRepo repository.DailyMetricsRepository,
) Resolver {
	return &Service{
		ledgerRepo:  ledgerRepo,
		metricsRepo: metricsRepo,
	}
}

// ResolveRisk responde o percentual de risco para a data pedida, caindo de
// camada em camada até o terminal sem dados.
func (s *Service) ResolveRisk(accountID string, date time.Time) *domain.RiskQueryResult {
	strategies := []strategy{
		s.exactMatchRisk,
		s.recentWindowRisk,
		s.anyAvailableRisk,
	}

	return s.resolve(strategies, accountID, date)
}

// ResolveRetention responde o percentual de retenção (100 − risco, ajustado
// pelo modificador de desempenho nas duas primeiras camadas).
func (s *Service) ResolveRetention(accountID string, date time.Time) *domain.RiskQueryResult {
	strategies := []strategy{
		s.exactMatchRetention,
		s.recentWindowRetention,
		s.anyAvailableRetention,
	}

	return s.resolve(strategies, accountID, date)
}

func (s *Service) resolve(strategies []strategy, accountID string, date time.Time) *domain.RiskQueryResult {
	for _, strat := range strategies {
		if result := strat(accountID, date); result != nil {
			return result
		}
	}

	return domain.NoDataResult()
}

// exactMatch busca a avaliação cujo for_date é exatamente a data pedida.
// Confiança 0.95, rebaixada para 0.4 quando a linha de métricas subjacente
// registra zero cupons e zero vendas (predição placeholder de dia sem dados).
func (s *Service) exactMatch(accountID string, date time.Time) (*domain.RiskAssessment, float64) {
	assessment, err := s.ledgerRepo.GetLatestByDate(accountID, date)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("Erro ao buscar avaliação exata no ledger, caindo para a próxima camada")
		return nil, 0
	}
	if assessment == nil {
		return nil, 0
	}

	confidence := exactMatchConfidence

	metrics := s.metricsForDate(accountID, assessment.ForDate)
	if metrics == nil || (metrics.ReceiptCount == 0 && metrics.SalesVolume == 0) {
		confidence = exactMatchNoDataConfidence
	}

	return assessment, confidence
}

func (s *Service) exactMatchRisk(accountID string, date time.Time) *domain.RiskQueryResult {
	assessment, confidence := s.exactMatch(accountID, date)
	if assessment == nil {
		return nil
	}

	value := assessment.RiskPercentage
	forDate := assessment.ForDate

	return &domain.RiskQueryResult{
		Value:      &value,
		Source:     domain.SourceExactMatch,
		Confidence: confidence,
		ForDate:    &forDate,
	}
}

func (s *Service) exactMatchRetention(accountID string, date time.Time) *domain.RiskQueryResult {
	assessment, confidence := s.exactMatch(accountID, date)
	if assessment == nil {
		return nil
	}

	metrics := s.metricsForDate(accountID, assessment.ForDate)
	value := applyPerformanceModifier(100-assessment.RiskPercentage, metrics, assessment.Level)
	forDate := assessment.ForDate

	return &domain.RiskQueryResult{
		Value:      &value,
		Source:     domain.SourceExactMatch,
		Confidence: confidence,
		ForDate:    &forDate,
	}
}

// recentWindowRetention calcula a média ponderada das avaliações dos últimos
// 7 dias. Peso = recência × atividade; exige ao menos 3 pontos.
func (s *Service) recentWindowRetention(accountID string, date time.Time) *domain.RiskQueryResult {
	points, err := s.ledgerRepo.ListLatestPerDateBetween(
		accountID,
		date.AddDate(0, 0, -recentRetentionWindowDays),
		date,
	)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("Erro ao buscar janela recente no ledger, caindo para a próxima camada")
		return nil
	}
	if len(points) < recentRetentionMinPoints {
		return nil
	}

	var weightedSum, totalWeight float64
	for _, point := range points {
		daysAgo := daysBetween(point.ForDate, date)

		recencyWeight := 1 - float64(daysAgo)*0.15
		if recencyWeight < 0.1 {
			recencyWeight = 0.1
		}

		weight := recencyWeight * s.activityWeight(accountID, point.ForDate)
		weightedSum += weight * (100 - point.RiskPercentage)
		totalWeight += weight
	}

	if totalWeight == 0 {
		return nil
	}

	// O modificador de desempenho é aplicado sobre a figura base da camada,
	// usando as métricas e o nível do ponto mais recente da janela
	newest := points[0]
	value := applyPerformanceModifier(
		weightedSum/totalWeight,
		s.metricsForDate(accountID, newest.ForDate),
		newest.Level,
	)

	confidence := 0.5 + float64(len(points))*0.05
	if confidence > 0.85 {
		confidence = 0.85
	}

	forDate := newest.ForDate
	return &domain.RiskQueryResult{
		Value:      &value,
		Source:     domain.SourceRecentRetention,
		Confidence: confidence,
		ForDate:    &forDate,
	}
}

// recentWindowRisk usa até as 3 avaliações mais recentes com menos de 3 dias
// de idade, com um pequeno ajuste de tendência entre o ponto mais novo e o
// mais antigo da janela.
func (s *Service) recentWindowRisk(accountID string, date time.Time) *domain.RiskQueryResult {
	points, err := s.ledgerRepo.ListLatestPerDateBetween(
		accountID,
		date.AddDate(0, 0, -(recentRiskWindowDays-1)),
		date,
	)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("Erro ao buscar janela recente no ledger, caindo para a próxima camada")
		return nil
	}
	if len(points) == 0 {
		return nil
	}

	if len(points) > recentRiskMaxPoints {
		points = points[:recentRiskMaxPoints]
	}

	newest := points[0]
	value := newest.RiskPercentage

	// Ajuste de tendência: risco subindo na janela empurra a resposta um
	// pouco para cima, caindo empurra para baixo
	if len(points) > 1 {
		oldest := points[len(points)-1]
		switch {
		case newest.RiskPercentage > oldest.RiskPercentage:
			value += 2
		case newest.RiskPercentage < oldest.RiskPercentage:
			value -= 2
		}
	}
	value = clampPercentage(value)

	daysAgo := daysBetween(newest.ForDate, date)
	confidence := 0.9 - float64(daysAgo)*0.1
	if confidence < 0.7 {
		confidence = 0.7
	}

	forDate := newest.ForDate
	return &domain.RiskQueryResult{
		Value:      &value,
		Source:     domain.SourceRecentRisk,
		Confidence: confidence,
		ForDate:    &forDate,
	}
}

// anyAvailable responde com a avaliação mais recente da conta, independente
// da idade, com confiança fixa reduzida.
func (s *Service) anyAvailable(accountID string) *domain.RiskAssessment {
	assessment, err := s.ledgerRepo.GetLatestOverall(accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("Erro ao buscar avaliação mais recente no ledger, caindo para o terminal")
		return nil
	}
	return assessment
}

func (s *Service) anyAvailableRisk(accountID string, _ time.Time) *domain.RiskQueryResult {
	assessment := s.anyAvailable(accountID)
	if assessment == nil {
		return nil
	}

	value := assessment.RiskPercentage
	forDate := assessment.ForDate

	return &domain.RiskQueryResult{
		Value:      &value,
		Source:     domain.SourceAnyAvailable,
		Confidence: anyAvailableRiskConfidence,
		ForDate:    &forDate,
	}
}

func (s *Service) anyAvailableRetention(accountID string, _ time.Time) *domain.RiskQueryResult {
	assessment := s.anyAvailable(accountID)
	if assessment == nil {
		return nil
	}

	value := clampPercentage(100 - assessment.RiskPercentage)
	forDate := assessment.ForDate

	return &domain.RiskQueryResult{
		Value:      &value,
		Source:     domain.SourceAnyAvailable,
		Confidence: anyAvailableRetentionConfidence,
		ForDate:    &forDate,
	}
}

// metricsForDate busca a linha de métricas de um dia; erro vira nil (camada
// decide o que fazer com a ausência).
func (s *Service) metricsForDate(accountID string, date time.Time) *domain.DailyMetrics {
	metrics, err := s.metricsRepo.GetByAccountIDAndDate(accountID, date)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": accountID,
			"date":       date.Format(time.DateOnly),
		}).Warn("Erro ao buscar métricas do dia para o resolvedor")
		return nil
	}
	return metrics
}

// activityWeight pondera um ponto da janela pela movimentação registrada no
// dia: clamp((cupons+tráfego)/25, 0.5, 2.0). Dia sem linha vale o mínimo.
func (s *Service) activityWeight(accountID string, date time.Time) float64 {
	metrics := s.metricsForDate(accountID, date)
	if metrics == nil {
		return 0.5
	}

	weight := float64(metrics.ReceiptCount+metrics.CustomerTraffic) / 25
	if weight < 0.5 {
		return 0.5
	}
	if weight > 2.0 {
		return 2.0
	}
	return weight
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func clampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
