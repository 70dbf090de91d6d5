package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Database  Database `mapstructure:",squash"`
	Auth      Auth     `mapstructure:",squash"`
	Scoring   Scoring  `mapstructure:",squash"`
	RiskSync  RiskSync `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Scoring concentra os parâmetros ajustáveis do motor de risco: o perfil
// padrão de baseline usado quando a conta não tem override e o tamanho da
// janela móvel dos rollups.
type Scoring struct {
	DefaultBaselineSales    float64 `mapstructure:"scoring_default_baseline_sales"`
	DefaultBaselineTraffic  float64 `mapstructure:"scoring_default_baseline_traffic"`
	DefaultBaselineReceipts float64 `mapstructure:"scoring_default_baseline_receipts"`
	RollupWindowDays        int     `mapstructure:"scoring_rollup_window_days"`
}

type RiskSync struct {
	CronSchedule        string `mapstructure:"risk_sync_cron"`
	LookbackDays        int    `mapstructure:"risk_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"risk_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"risk_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"risk_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retention")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do motor de score (perfil padrão de uma loja pequena)
	viper.SetDefault("SCORING_DEFAULT_BASELINE_SALES", 40000.0)
	viper.SetDefault("SCORING_DEFAULT_BASELINE_TRAFFIC", 450.0)
	viper.SetDefault("SCORING_DEFAULT_BASELINE_RECEIPTS", 120.0)
	viper.SetDefault("SCORING_ROLLUP_WINDOW_DAYS", 14) // Janela móvel dos rollups

	// Defaults da sincronização diária de avaliações de risco
	viper.SetDefault("RISK_SYNC_CRON", "0 5 * * *")        // Todos os dias às 5h da manhã
	viper.SetDefault("RISK_SYNC_LOOKBACK_DAYS", 1)         // Avaliar o dia anterior
	viper.SetDefault("RISK_SYNC_REQUEST_DELAY_SECONDS", 0) // Sem atraso entre contas
	viper.SetDefault("RISK_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("RISK_SYNC_ENABLED", false)           // Habilitar sincronização diária

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
