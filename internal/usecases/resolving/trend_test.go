package resolving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Trend_comparaComBlocoAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, metricsRepo := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	// Lado atual responde pela camada exata
	current := &domain.RiskAssessment{
		AccountID:      "ACC001",
		ForDate:        date,
		RiskPercentage: 30,
		Level:          domain.RiskLevelMedium,
	}
	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(current, nil)

	// Bloco anterior: 7 a 13 dias antes da data pedida
	priorStart := date.AddDate(0, 0, -13)
	priorEnd := date.AddDate(0, 0, -7)
	priorPoints := []*domain.RiskAssessment{
		{AccountID: "ACC001", ForDate: priorEnd, RiskPercentage: 40, Level: domain.RiskLevelMedium},
	}
	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", priorStart, priorEnd).
		Return(priorPoints, nil)

	metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", gomock.Any()).Return(nil, nil).AnyTimes()

	trend := service.Trend("ACC001", date)

	// Atual 70 (sem métricas, nível médio) contra bloco anterior 60
	assert.NotNil(t, trend.Delta)
	assert.InDelta(t, 10.0, *trend.Delta, 0.0001)
	assert.Contains(t, trend.Tooltip, "Current: 70.0")
	assert.Contains(t, trend.Tooltip, "prior week: 60.0")
}

func TestService_Trend_semBlocoAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, metricsRepo := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	current := &domain.RiskAssessment{
		AccountID:      "ACC001",
		ForDate:        date,
		RiskPercentage: 30,
		Level:          domain.RiskLevelMedium,
	}
	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(current, nil)

	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -13), date.AddDate(0, 0, -7)).
		Return(nil, nil)

	metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", gomock.Any()).Return(nil, nil).AnyTimes()

	trend := service.Trend("ACC001", date)

	assert.Nil(t, trend.Delta)
	assert.Contains(t, trend.Tooltip, "No prior week data")
}

func TestService_Trend_semNenhumDado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, _ := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, nil)
	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -7), date).
		Return(nil, nil)
	ledgerRepo.EXPECT().GetLatestOverall("ACC001").Return(nil, nil)
	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -13), date.AddDate(0, 0, -7)).
		Return(nil, nil)

	trend := service.Trend("ACC001", date)

	assert.Nil(t, trend.Delta)
	assert.Equal(t, domain.SourceNoData, trend.Tooltip)
}
