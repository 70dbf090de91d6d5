package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	scoringmocks "github.com/vfg2006/retention-radar-api/internal/usecases/scoring/mocks"
	"go.uber.org/mock/gomock"
)

func TestRiskSyncService_getActiveAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	service := &RiskSyncService{
		accountRepo: mockAccountRepo,
	}

	tests := []struct {
		name     string
		setup    func()
		expected int
		hasError bool
	}{
		{
			name: "Deve retornar apenas contas ativas",
			setup: func() {
				accounts := []*domain.Account{
					{ID: "ACC001", Name: "Loja A", Status: domain.AccountStatusActive},
					{ID: "ACC002", Name: "Loja B", Status: domain.AccountStatusActive},
				}

				mockAccountRepo.EXPECT().
					ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
					Return(accounts, nil)
			},
			expected: 2,
			hasError: false,
		},
		{
			name: "Deve retornar erro quando repository falha",
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
					Return(nil, assert.AnError)
			},
			expected: 0,
			hasError: true,
		},
		{
			name: "Deve retornar lista vazia quando não há contas",
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
					Return([]*domain.Account{}, nil)
			},
			expected: 0,
			hasError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			accounts, err := service.getActiveAccounts()

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, accounts, tt.expected)
			}
		})
	}
}

func TestRiskSyncService_getDatesToProcess(t *testing.T) {
	service := &RiskSyncService{
		config: RiskSyncConfig{LookbackDays: 3},
	}

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 3)

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Day(), dates[0].Day())

	// Datas devem andar para trás, uma por posição
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].Before(dates[i-1]))
	}
}

func TestRiskSyncService_processAssessmentsForDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := scoringmocks.NewMockScorer(ctrl)
	service := &RiskSyncService{
		scorer: mockScorer,
		config: RiskSyncConfig{RequestDelaySeconds: 0, MaxConcurrentJobs: 1},
	}

	account := &domain.Account{ID: "ACC001", Name: "Loja A", Status: domain.AccountStatusActive}

	day1 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	assessment := &domain.RiskAssessment{
		AccountID: "ACC001",
		RiskScore: 0.42,
		Level:     domain.RiskLevelMedium,
	}

	// As datas devem ser processadas da mais antiga para a mais recente
	first := mockScorer.EXPECT().AssessAccount("ACC001", day1).Return(assessment, nil)
	mockScorer.EXPECT().AssessAccount("ACC001", day2).Return(assessment, nil).After(first)

	// Datas fornecidas fora de ordem de propósito
	dates := []time.Time{day2, day1}
	service.processAssessmentsForDates([]*domain.Account{account}, dates)

	// A fatia do chamador não é reordenada (ela é compartilhada com os logs
	// do agendador)
	assert.Equal(t, []time.Time{day2, day1}, dates)
}

func TestRiskSyncService_processAccountAssessment_error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := scoringmocks.NewMockScorer(ctrl)
	service := &RiskSyncService{
		scorer: mockScorer,
	}

	account := &domain.Account{ID: "ACC001", Name: "Loja A"}
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mockScorer.EXPECT().AssessAccount("ACC001", date).Return(nil, assert.AnError)

	// Erro de avaliação não deve propagar, apenas ser registrado
	service.processAccountAssessment(account, date)
}

func TestRiskSyncService_GetStatus(t *testing.T) {
	service := &RiskSyncService{
		config: RiskSyncConfig{
			CronSchedule:        "0 5 * * *",
			SyncEnabled:         true,
			LookbackDays:        2,
			RequestDelaySeconds: 1,
			MaxConcurrentJobs:   4,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, 2, status["sync_lookback_days"])
	assert.Equal(t, 4, status["sync_max_concurrent"])
	assert.Equal(t, 1, status["sync_request_delay_s"])
}
