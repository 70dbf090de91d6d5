// Package scheduler contém os serviços de agendamento para avaliação de risco
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository"
	"github.com/vfg2006/retention-radar-api/internal/config"
	"github.com/vfg2006/retention-radar-api/internal/domain"
	"github.com/vfg2006/retention-radar-api/internal/usecases/scoring"
)

type RiskSyncConfig struct {
	CronSchedule        string
	SyncEnabled         bool
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
}

// RiskSyncService avalia diariamente o risco de churn de todas as contas
// ativas e registra os resultados no histórico de avaliações.
type RiskSyncService struct {
	scheduler           *gocron.Scheduler
	accountRepo         repository.AccountRepository
	scorer              scoring.Scorer
	config              RiskSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRiskSyncService(
	accountRepo repository.AccountRepository,
	scorer scoring.Scorer,
	appConfig *config.Config,
) *RiskSyncService {
	syncConfig := RiskSyncConfig{
		CronSchedule:        appConfig.RiskSync.CronSchedule, // Default: 5h da manhã todos os dias
		SyncEnabled:         appConfig.RiskSync.Enabled,
		LookbackDays:        appConfig.RiskSync.LookbackDays,
		RequestDelaySeconds: appConfig.RiskSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.RiskSync.MaxConcurrentJobs,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
	}).Info("Configuração do agendador de avaliação de risco carregada")

	return &RiskSyncService{
		scheduler:   scheduler,
		accountRepo: accountRepo,
		scorer:      scorer,
		config:      syncConfig,
	}
}

func (s *RiskSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de avaliação de risco desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de avaliação de risco")

	// Agendar a avaliação de risco diária
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.syncAllAssessments)
	if err != nil {
		return fmt.Errorf("erro ao agendar avaliação de risco: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de avaliação de risco")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAssessments avalia o risco de todas as contas ativas
func (s *RiskSyncService) syncAllAssessments() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Avaliação de risco já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando avaliação de risco para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para avaliação de risco")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para avaliação de risco")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para avaliação de risco")

	s.processAssessmentsForDates(activeAccounts, dates)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"days":     s.config.LookbackDays,
	}).Info("Avaliação de risco concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// getActiveAccounts busca as contas ativas para avaliação
func (s *RiskSyncService) getActiveAccounts() ([]*domain.Account, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AccountStatus{domain.AccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para avaliação de risco")
		return []*domain.Account{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para avaliação de risco")

	return activeAccounts, nil
}

// getDatesToProcess cria um conjunto de datas para processar
func (s *RiskSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Começar de ontem e ir para trás
	}
	return dates
}

// processAssessmentsForDates avalia cada conta em todas as datas do período.
// As datas são ordenadas uma única vez aqui, da mais antiga para a mais
// recente, porque a fatia é compartilhada entre as goroutines das contas.
func (s *RiskSyncService) processAssessmentsForDates(accounts []*domain.Account, dates []time.Time) {
	ordered := make([]time.Time, len(dates))
	copy(ordered, dates)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j])
	})

	// Canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"account_name": acc.Name,
				"total_dates":  len(ordered),
			}).Info("Avaliando risco da conta")

			s.processAccountForAllDates(acc, ordered)
		}(account)
	}

	wg.Wait()
}

// processAccountForAllDates avalia uma conta em todas as datas, na ordem
// recebida (da mais antiga para a mais recente), para que o histórico cresça
// em ordem.
func (s *RiskSyncService) processAccountForAllDates(acc *domain.Account, dates []time.Time) {
	for _, date := range dates {
		s.processAccountAssessment(acc, date)

		// Aguardar antes da próxima avaliação para espaçar a carga no banco
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processAccountAssessment avalia o risco de uma conta em uma data específica
func (s *RiskSyncService) processAccountAssessment(acc *domain.Account, date time.Time) {
	assessment, err := s.scorer.AssessAccount(acc.ID, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"date":       date.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("Erro ao avaliar risco da conta")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"date":       date.Format(time.DateOnly),
		"risk_score": assessment.RiskScore,
		"risk_level": assessment.Level,
	}).Info("Avaliação de risco registrada para conta e data")
}

// TriggerManualSync inicia manualmente uma avaliação de risco
func (s *RiskSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Avaliação de risco já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando avaliação de risco manual")
	go s.syncAllAssessments()
}

// GetStatus retorna o status atual do agendador
func (s *RiskSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
