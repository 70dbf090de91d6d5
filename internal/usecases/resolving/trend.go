package resolving

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

// Bloco anterior comparado pela tendência: 7 a 13 dias antes da data pedida.
const (
	trendPriorOffsetDays = 7
	trendPriorWindowDays = 7
)

// Trend compara a resposta atual do resolvedor de retenção com a média
// ponderada do bloco de 7 dias anterior. Quando um dos lados não tem dado,
// o delta é nulo e o tooltip descreve apenas o lado disponível.
func (s *Service) Trend(accountID string, date time.Time) *domain.TrendDelta {
	current := s.ResolveRetention(accountID, date)
	prior := s.priorWindowAverage(accountID, date)

	if current.Value == nil && prior == nil {
		return &domain.TrendDelta{
			Delta:   nil,
			Tooltip: domain.SourceNoData,
		}
	}

	if current.Value == nil {
		return &domain.TrendDelta{
			Delta: nil,
			Tooltip: fmt.Sprintf("No current value. Prior week: %.1f (%s, confidence %.0f%%)",
				*prior.Value, prior.Source, prior.Confidence*100),
		}
	}

	if prior == nil {
		return &domain.TrendDelta{
			Delta: nil,
			Tooltip: fmt.Sprintf("Current: %.1f (%s, confidence %.0f%%). No prior week data",
				*current.Value, current.Source, current.Confidence*100),
		}
	}

	delta := *current.Value - *prior.Value

	return &domain.TrendDelta{
		Delta: &delta,
		Tooltip: fmt.Sprintf("Current: %.1f (%s, confidence %.0f%%) vs prior week: %.1f (%s, confidence %.0f%%)",
			*current.Value, current.Source, current.Confidence*100,
			*prior.Value, prior.Source, prior.Confidence*100),
	}
}

// priorWindowAverage aplica o estilo da camada RECENT_WINDOW ao bloco
// deslocado (7 a 13 dias atrás). Basta um ponto; sem pontos retorna nil.
func (s *Service) priorWindowAverage(accountID string, date time.Time) *domain.RiskQueryResult {
	endDate := date.AddDate(0, 0, -trendPriorOffsetDays)
	startDate := date.AddDate(0, 0, -(trendPriorOffsetDays + trendPriorWindowDays - 1))

	points, err := s.ledgerRepo.ListLatestPerDateBetween(accountID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Warn("Erro ao buscar bloco anterior para a tendência")
		return nil
	}
	if len(points) == 0 {
		return nil
	}

	var weightedSum, totalWeight float64
	for _, point := range points {
		daysAgo := daysBetween(point.ForDate, endDate)

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

	value := clampPercentage(weightedSum / totalWeight)

	confidence := 0.5 + float64(len(points))*0.05
	if confidence > 0.85 {
		confidence = 0.85
	}

	forDate := points[0].ForDate
	return &domain.RiskQueryResult{
		Value:      &value,
		Source:     domain.SourceRecentRetention,
		Confidence: confidence,
		ForDate:    &forDate,
	}
}
