package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retention-radar-api/internal/config"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Scoring: config.Scoring{
			DefaultBaselineSales:    40000,
			DefaultBaselineTraffic:  450,
			DefaultBaselineReceipts: 120,
			RollupWindowDays:        14,
		},
	}
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockDailyMetricsRepository, *mocks.MockBaselineThresholdRepository, *mocks.MockRiskAssessmentRepository) {
	metricsRepo := mocks.NewMockDailyMetricsRepository(ctrl)
	baselineRepo := mocks.NewMockBaselineThresholdRepository(ctrl)
	ledgerRepo := mocks.NewMockRiskAssessmentRepository(ctrl)

	service := &Service{
		metricsRepo:  metricsRepo,
		baselineRepo: baselineRepo,
		ledgerRepo:   ledgerRepo,
		cfg:          testConfig(),
	}

	return service, metricsRepo, baselineRepo, ledgerRepo
}

func TestService_Score_diaSaudavel(t *testing.T) {
	service := &Service{cfg: testConfig()}

	baselines := &domain.BaselineThresholds{
		AccountID:        "ACC001",
		BaselineSales:    4000,
		BaselineTraffic:  100,
		BaselineReceipts: 40,
	}

	metrics := &domain.DailyMetrics{
		AccountID:       "ACC001",
		Date:            time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		SalesVolume:     4500,
		CustomerTraffic: 110,
		ReceiptCount:    45,
	}

	rollup := domain.RollupStats{AvgSales: 4400, AvgReceipts: 44, Days: 10}

	assessment := service.Score(metrics, baselines, rollup)

	assert.Equal(t, 0.0, assessment.RiskScore)
	assert.Equal(t, domain.RiskLevelLow, assessment.Level)
	assert.Equal(t, []string{"Activity within expected baseline levels"}, assessment.Factors)
}

func TestService_Score_diaSemAtividade(t *testing.T) {
	service := &Service{cfg: testConfig()}

	baselines := &domain.BaselineThresholds{
		AccountID:        "ACC001",
		BaselineSales:    4000,
		BaselineTraffic:  100,
		BaselineReceipts: 40,
	}

	metrics := &domain.DailyMetrics{
		AccountID: "ACC001",
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	assessment := service.Score(metrics, baselines, domain.RollupStats{})

	// Limiar saturado (1.0) e regra de baixa atividade (0.20):
	// 0.70*1.0 + 0.30*0.20 = 0.76
	assert.InDelta(t, 0.76, assessment.RiskScore, 0.0001)
	assert.InDelta(t, 76.0, assessment.RiskPercentage, 0.01)
	assert.Equal(t, domain.RiskLevelHigh, assessment.Level)

	assert.Equal(t, []string{
		"No business activity recorded",
		"Add transaction data for accurate assessment",
	}, assessment.Factors)
	assert.Contains(t, assessment.Description, "No business activity recorded")
}

func TestService_Score_normalizaContadoresNegativos(t *testing.T) {
	service := &Service{cfg: testConfig()}

	baselines := &domain.BaselineThresholds{
		BaselineSales:    4000,
		BaselineTraffic:  100,
		BaselineReceipts: 40,
	}

	metrics := &domain.DailyMetrics{
		AccountID:       "ACC001",
		SalesVolume:     -500,
		CustomerTraffic: -10,
		ReceiptCount:    -3,
	}

	assessment := service.Score(metrics, baselines, domain.RollupStats{})

	// Entradas negativas são zeradas e avaliam como dia sem atividade
	assert.Equal(t, domain.RiskLevelHigh, assessment.Level)

	// O struct original do chamador não é alterado
	assert.Equal(t, -500.0, metrics.SalesVolume)
}

func TestService_ResolveBaselines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, baselineRepo, _ := newTestService(ctrl)

	t.Run("Override da conta tem prioridade", func(t *testing.T) {
		stored := &domain.BaselineThresholds{
			AccountID:        "ACC001",
			BaselineSales:    5000,
			BaselineTraffic:  120,
			BaselineReceipts: 50,
		}

		baselineRepo.EXPECT().GetByAccountID("ACC001").Return(stored, nil)

		result := service.ResolveBaselines("ACC001")

		assert.Equal(t, stored, result)
		assert.False(t, result.IsDefault)
	})

	t.Run("Conta sem override usa o perfil padrão", func(t *testing.T) {
		baselineRepo.EXPECT().GetByAccountID("ACC002").Return(nil, nil)

		result := service.ResolveBaselines("ACC002")

		assert.True(t, result.IsDefault)
		assert.Equal(t, 40000.0, result.BaselineSales)
		assert.Equal(t, 450.0, result.BaselineTraffic)
		assert.Equal(t, 120.0, result.BaselineReceipts)
	})

	t.Run("Override com baseline de vendas inválido é ignorado", func(t *testing.T) {
		stored := &domain.BaselineThresholds{AccountID: "ACC003", BaselineSales: 0}

		baselineRepo.EXPECT().GetByAccountID("ACC003").Return(stored, nil)

		result := service.ResolveBaselines("ACC003")

		assert.True(t, result.IsDefault)
	})

	t.Run("Erro de leitura cai no perfil padrão", func(t *testing.T) {
		baselineRepo.EXPECT().GetByAccountID("ACC004").Return(nil, assert.AnError)

		result := service.ResolveBaselines("ACC004")

		assert.True(t, result.IsDefault)
	})
}

func TestService_Rollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metricsRepo, _, _ := newTestService(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Calcula médias sobre a janela encontrada", func(t *testing.T) {
		rows := []*domain.DailyMetrics{
			{ReceiptCount: 40, SalesVolume: 4000, CustomerTraffic: 100},
			{ReceiptCount: 20, SalesVolume: 2000, CustomerTraffic: 50},
		}

		metricsRepo.EXPECT().ListBeforeDate("ACC001", date, 14).Return(rows, nil)

		rollup := service.Rollup("ACC001", date)

		assert.Equal(t, 2, rollup.Days)
		assert.Equal(t, 30.0, rollup.AvgReceipts)
		assert.Equal(t, 3000.0, rollup.AvgSales)
		assert.Equal(t, 75.0, rollup.AvgTraffic)
	})

	t.Run("Erro de leitura vira rollup vazio", func(t *testing.T) {
		metricsRepo.EXPECT().ListBeforeDate("ACC001", date, 14).Return(nil, assert.AnError)

		rollup := service.Rollup("ACC001", date)

		assert.Equal(t, 0, rollup.Days)
	})
}

func TestService_AssessAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metricsRepo, baselineRepo, ledgerRepo := newTestService(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Dia com métricas é pontuado e registrado no ledger", func(t *testing.T) {
		metrics := &domain.DailyMetrics{
			AccountID:       "ACC001",
			Date:            date,
			SalesVolume:     2000,
			CustomerTraffic: 60,
			ReceiptCount:    25,
		}
		baselines := &domain.BaselineThresholds{
			AccountID:        "ACC001",
			BaselineSales:    4000,
			BaselineTraffic:  100,
			BaselineReceipts: 40,
		}

		metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", date).Return(metrics, nil)
		baselineRepo.EXPECT().GetByAccountID("ACC001").Return(baselines, nil)
		metricsRepo.EXPECT().ListBeforeDate("ACC001", date, 14).Return(nil, nil)

		ledgerRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(assessment *domain.RiskAssessment) (*domain.RiskAssessment, error) {
				assert.Equal(t, "ACC001", assessment.AccountID)
				assert.Equal(t, date, assessment.ForDate)
				assert.NotEmpty(t, assessment.Factors)

				stored := *assessment
				stored.ID = 10
				return &stored, nil
			})

		result, err := service.AssessAccount("ACC001", date)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), result.ID)
	})

	t.Run("Dia sem linha de métricas é avaliado como placeholder", func(t *testing.T) {
		metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", date).Return(nil, nil)
		baselineRepo.EXPECT().GetByAccountID("ACC001").Return(nil, nil)
		metricsRepo.EXPECT().ListBeforeDate("ACC001", date, 14).Return(nil, nil)

		ledgerRepo.EXPECT().
			Insert(gomock.Any()).
			DoAndReturn(func(assessment *domain.RiskAssessment) (*domain.RiskAssessment, error) {
				assert.Equal(t, domain.RiskLevelHigh, assessment.Level)
				assert.Contains(t, assessment.Factors, "No business activity recorded")
				return assessment, nil
			})

		result, err := service.AssessAccount("ACC001", date)

		assert.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("Erro ao gravar no ledger é propagado", func(t *testing.T) {
		metricsRepo.EXPECT().GetByAccountIDAndDate("ACC001", date).Return(nil, nil)
		baselineRepo.EXPECT().GetByAccountID("ACC001").Return(nil, nil)
		metricsRepo.EXPECT().ListBeforeDate("ACC001", date, 14).Return(nil, nil)
		ledgerRepo.EXPECT().Insert(gomock.Any()).Return(nil, assert.AnError)

		result, err := service.AssessAccount("ACC001", date)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestService_IngestMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metricsRepo, _, _ := newTestService(ctrl)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Valida conta e data obrigatórias", func(t *testing.T) {
		err := service.IngestMetrics(&domain.DailyMetrics{Date: date})
		assert.ErrorIs(t, err, ErrAccountIDRequired)

		err = service.IngestMetrics(&domain.DailyMetrics{AccountID: "ACC001"})
		assert.ErrorIs(t, err, ErrMetricsDateRequired)
	})

	t.Run("Normaliza antes de gravar", func(t *testing.T) {
		metrics := &domain.DailyMetrics{
			AccountID:    "ACC001",
			Date:         date,
			ReceiptCount: -5,
			SalesVolume:  1000,
		}

		metricsRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(m *domain.DailyMetrics) error {
				assert.Equal(t, 0, m.ReceiptCount)
				return nil
			})

		assert.NoError(t, service.IngestMetrics(metrics))
	})
}

func TestService_SaveBaselines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, baselineRepo, _ := newTestService(ctrl)

	t.Run("Valida conta e valores positivos", func(t *testing.T) {
		err := service.SaveBaselines(&domain.BaselineThresholds{})
		assert.ErrorIs(t, err, ErrAccountIDRequired)

		err = service.SaveBaselines(&domain.BaselineThresholds{
			AccountID:        "ACC001",
			BaselineSales:    1000,
			BaselineTraffic:  0,
			BaselineReceipts: 10,
		})
		assert.ErrorIs(t, err, ErrInvalidBaselines)
	})

	t.Run("Override gravado nunca é marcado como padrão", func(t *testing.T) {
		thresholds := &domain.BaselineThresholds{
			AccountID:        "ACC001",
			BaselineSales:    5000,
			BaselineTraffic:  120,
			BaselineReceipts: 50,
			IsDefault:        true,
		}

		baselineRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(saved *domain.BaselineThresholds) error {
				assert.False(t, saved.IsDefault)
				return nil
			})

		assert.NoError(t, service.SaveBaselines(thresholds))
	})
}

func TestService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, ledgerRepo := newTestService(ctrl)

	// Limite não positivo cai no padrão de 30
	ledgerRepo.EXPECT().ListByAccountID("ACC001", 30).Return([]*domain.RiskAssessment{}, nil)

	result, err := service.History("ACC001", 0)

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestService_HistoryBetween(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, ledgerRepo := newTestService(ctrl)

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Intervalo invertido é rejeitado", func(t *testing.T) {
		result, err := service.HistoryBetween("ACC001", end, start)

		assert.ErrorIs(t, err, ErrInvalidDateRange)
		assert.Nil(t, result)
	})

	t.Run("Intervalo válido delega ao ledger", func(t *testing.T) {
		ledgerRepo.EXPECT().
			ListLatestPerDateBetween("ACC001", start, end).
			Return([]*domain.RiskAssessment{{AccountID: "ACC001"}}, nil)

		result, err := service.HistoryBetween("ACC001", start, end)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}
