package resolving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestResolver(ctrl *gomock.Controller) (*Service, *mocks.MockRiskAssessmentRepository, *mocks.MockDailyMetricsRepository) {
	ledgerRepo := mocks.NewMockRiskAssessmentRepository(ctrl)
	metricsRepo := mocks.NewMockDailyMetricsRepository(ctrl)

	service := &Service{
		ledgerRepo:  ledgerRepo,
		metricsRepo: metricsRepo,
	}

	return service, ledgerRepo, metricsRepo
}

func TestService_ResolveRisk_exactMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, metricsRepo := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assessment := &domain.RiskAssessment{
		AccountID:      "ACC001",
		ForDate:        date,
		RiskPercentage: 42,
		Level:          domain.RiskLevelMedium,
	}

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(assessment, nil)
	metricsRepo.EXPECT().
		GetByAccountIDAndDate("ACC001", date).
		Return(&domain.DailyMetrics{ReceiptCount: 10, SalesVolume: 1000}, nil)

	result := service.ResolveRisk("ACC001", date)

	assert.Equal(t, domain.SourceExactMatch, result.Source)
	assert.Equal(t, 42.0, *result.Value)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, date, *result.ForDate)
}

func TestService_ResolveRisk_exactMatchPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, metricsRepo := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assessment := &domain.RiskAssessment{
		AccountID:      "ACC001",
		ForDate:        date,
		RiskPercentage: 76,
		Level:          domain.RiskLevelHigh,
	}

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(assessment, nil)

	// Avaliação existe mas o dia subjacente não registrou movimento:
	// a resposta vale, porém com confiança rebaixada
	metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", date).Return(nil, nil)

	result := service.ResolveRisk("ACC001", date)

	assert.Equal(t, domain.SourceExactMatch, result.Source)
	assert.Equal(t, 0.4, result.Confidence)
}

func TestService_ResolveRisk_recentWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, _ := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, nil)

	points := []*domain.RiskAssessment{
		{AccountID: "ACC001", ForDate: date.AddDate(0, 0, -1), RiskPercentage: 50},
		{AccountID: "ACC001", ForDate: date.AddDate(0, 0, -2), RiskPercentage: 40},
	}

	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -2), date).
		Return(points, nil)

	result := service.ResolveRisk("ACC001", date)

	assert.Equal(t, domain.SourceRecentRisk, result.Source)

	// Risco subindo na janela empurra a resposta dois pontos para cima
	assert.Equal(t, 52.0, *result.Value)

	// Ponto mais novo tem um dia de idade
	assert.InDelta(t, 0.8, result.Confidence, 0.0001)
	assert.Equal(t, points[0].ForDate, *result.ForDate)
}

func TestService_ResolveRisk_anyAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, _ := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	oldDate := date.AddDate(0, 0, -30)

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, nil)
	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -2), date).
		Return(nil, nil)
	ledgerRepo.EXPECT().
		GetLatestOverall("ACC001").
		Return(&domain.RiskAssessment{AccountID: "ACC001", ForDate: oldDate, RiskPercentage: 33}, nil)

	result := service.ResolveRisk("ACC001", date)

	assert.Equal(t, domain.SourceAnyAvailable, result.Source)
	assert.Equal(t, 33.0, *result.Value)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestService_ResolveRisk_semDados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, _ := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, nil)
	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -2), date).
		Return(nil, nil)
	ledgerRepo.EXPECT().GetLatestOverall("ACC001").Return(nil, nil)

	result := service.ResolveRisk("ACC001", date)

	// Ausência total de dados é resposta, nunca erro
	assert.Nil(t, result.Value)
	assert.Equal(t, domain.SourceNoData, result.Source)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Nil(t, result.ForDate)
}

func TestService_ResolveRisk_erroDeLeituraCaiDeCamada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, _ := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	oldDate := date.AddDate(0, 0, -20)

	// Falhas de leitura nas duas primeiras camadas não interrompem a cascata
	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, assert.AnError)
	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -2), date).
		Return(nil, assert.AnError)
	ledgerRepo.EXPECT().
		GetLatestOverall("ACC001").
		Return(&domain.RiskAssessment{AccountID: "ACC001", ForDate: oldDate, RiskPercentage: 60}, nil)

	result := service.ResolveRisk("ACC001", date)

	assert.Equal(t, domain.SourceAnyAvailable, result.Source)
	assert.Equal(t, 60.0, *result.Value)
}

func TestService_ResolveRetention_exactMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, metricsRepo := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assessment := &domain.RiskAssessment{
		AccountID:      "ACC001",
		ForDate:        date,
		RiskPercentage: 30,
		Level:          domain.RiskLevelMedium,
	}

	metrics := &domain.DailyMetrics{
		ReceiptCount:    10,
		SalesVolume:     1000,
		TransactionDrop: 0,
	}

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(assessment, nil)
	metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", date).Return(metrics, nil).Times(2)

	result := service.ResolveRetention("ACC001", date)

	assert.Equal(t, domain.SourceExactMatch, result.Source)
	assert.Equal(t, 0.95, result.Confidence)

	// Base 70 (100 - 30) com bônus de queda de transação abaixo de 5%
	assert.InDelta(t, 71.0, *result.Value, 0.0001)
}

func TestService_ResolveRetention_recentWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, metricsRepo := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, nil)

	points := []*domain.RiskAssessment{
		{AccountID: "ACC001", ForDate: date.AddDate(0, 0, -1), RiskPercentage: 40, Level: domain.RiskLevelMedium},
		{AccountID: "ACC001", ForDate: date.AddDate(0, 0, -2), RiskPercentage: 40, Level: domain.RiskLevelMedium},
		{AccountID: "ACC001", ForDate: date.AddDate(0, 0, -4), RiskPercentage: 40, Level: domain.RiskLevelMedium},
	}

	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -7), date).
		Return(points, nil)

	// Dias da janela sem linha de métricas valem o peso mínimo de atividade
	metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", gomock.Any()).Return(nil, nil).AnyTimes()

	result := service.ResolveRetention("ACC001", date)

	assert.Equal(t, domain.SourceRecentRetention, result.Source)

	// Todos os pontos com o mesmo risco: a média ponderada preserva o valor
	assert.InDelta(t, 60.0, *result.Value, 0.0001)

	// Três pontos na janela
	assert.InDelta(t, 0.65, result.Confidence, 0.0001)
}

func TestService_ResolveRetention_janelaInsuficiente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, _ := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	oldDate := date.AddDate(0, 0, -15)

	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, nil)

	// Dois pontos não bastam para a média ponderada
	points := []*domain.RiskAssessment{
		{AccountID: "ACC001", ForDate: date.AddDate(0, 0, -1), RiskPercentage: 40},
		{AccountID: "ACC001", ForDate: date.AddDate(0, 0, -2), RiskPercentage: 40},
	}

	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -7), date).
		Return(points, nil)
	ledgerRepo.EXPECT().
		GetLatestOverall("ACC001").
		Return(&domain.RiskAssessment{AccountID: "ACC001", ForDate: oldDate, RiskPercentage: 45}, nil)

	result := service.ResolveRetention("ACC001", date)

	assert.Equal(t, domain.SourceAnyAvailable, result.Source)
	assert.Equal(t, 55.0, *result.Value)
	assert.Equal(t, 0.6, result.Confidence)
}

func TestActivityWeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, metricsRepo := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		metrics  *domain.DailyMetrics
		expected float64
	}{
		{"Dia sem linha vale o mínimo", nil, 0.5},
		{"Movimento fraco é limitado por baixo", &domain.DailyMetrics{ReceiptCount: 2, CustomerTraffic: 3}, 0.5},
		{"Movimento normal pondera proporcionalmente", &domain.DailyMetrics{ReceiptCount: 10, CustomerTraffic: 15}, 1.0},
		{"Movimento forte é limitado por cima", &domain.DailyMetrics{ReceiptCount: 40, CustomerTraffic: 80}, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", date).Return(tt.metrics, nil)

			assert.Equal(t, tt.expected, service.activityWeight("ACC001", date))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 15, 1, 0, 0, 0, time.UTC)

	// Conta dias de calendário, ignorando a hora do dia
	assert.Equal(t, 5, daysBetween(from, to))
	assert.Equal(t, 0, daysBetween(to, to))
}

// Ledger com avaliações apenas três e dez dias atrás: a consulta de hoje
// esgota as duas primeiras camadas (sem avaliação exata; a janela recente de
// retenção alcança só o ponto de três dias atrás, menos que o mínimo; a de
// risco não alcança nenhum) e responde com a mais recente disponível.
func TestService_Resolve_cascataComLedgerEsparso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, ledgerRepo, _ := newTestResolver(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	threeDaysAgo := date.AddDate(0, 0, -3)

	latest := &domain.RiskAssessment{
		AccountID:      "ACC001",
		ForDate:        threeDaysAgo,
		RiskPercentage: 35,
		Level:          domain.RiskLevelMedium,
	}

	// Retenção: o ponto de dez dias atrás fica fora da janela de 7 dias
	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, nil)
	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -7), date).
		Return([]*domain.RiskAssessment{latest}, nil)
	ledgerRepo.EXPECT().GetLatestOverall("ACC001").Return(latest, nil)

	retention := service.ResolveRetention("ACC001", date)

	assert.Equal(t, domain.SourceAnyAvailable, retention.Source)
	assert.Equal(t, 65.0, *retention.Value)
	assert.Equal(t, 0.6, retention.Confidence)
	assert.Equal(t, threeDaysAgo, *retention.ForDate)

	// Risco: a janela de 3 dias não alcança nem o ponto de três dias atrás
	ledgerRepo.EXPECT().GetLatestByDate("ACC001", date).Return(nil, nil)
	ledgerRepo.EXPECT().
		ListLatestPerDateBetween("ACC001", date.AddDate(0, 0, -2), date).
		Return([]*domain.RiskAssessment{}, nil)
	ledgerRepo.EXPECT().GetLatestOverall("ACC001").Return(latest, nil)

	risk := service.ResolveRisk("ACC001", date)

	assert.Equal(t, domain.SourceAnyAvailable, risk.Source)
	assert.Equal(t, 35.0, *risk.Value)
	assert.Equal(t, 0.5, risk.Confidence)
	assert.Equal(t, threeDaysAgo, *risk.ForDate)
}
