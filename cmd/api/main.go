package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retention-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/retention-radar-api/infrastructure/repository"
	"github.com/vfg2006/retention-radar-api/internal/api"
	"github.com/vfg2006/retention-radar-api/internal/config"
	"github.com/vfg2006/retention-radar-api/internal/scheduler"
	"github.com/vfg2006/retention-radar-api/internal/usecases/account"
	"github.com/vfg2006/retention-radar-api/internal/usecases/authenticating"
	"github.com/vfg2006/retention-radar-api/internal/usecases/resolving"
	"github.com/vfg2006/retention-radar-api/internal/usecases/scoring"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	metricsRepo := repository.NewDailyMetricsRepository(pgConn)
	baselineRepo := repository.NewBaselineThresholdRepository(pgConn)
	ledgerRepo := repository.NewRiskAssessmentRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	accountService := account.NewService(accountRepo)

	scorer := scoring.NewService(metricsRepo, baselineRepo, ledgerRepo, cfg)

	resolver := resolving.NewService(ledgerRepo, metricsRepo)

	// Inicializa o agendador de avaliações diárias de risco
	riskSyncService := scheduler.NewRiskSyncService(accountRepo, scorer, cfg)

	// Inicia o agendador em background
	if err := riskSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de avaliações de risco")
	} else {
		logrus.Info("Agendador de avaliações de risco iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		scorer,
		resolver,
		authenticator,
		riskSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
