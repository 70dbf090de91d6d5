package domain

import (
	"time"
)

// RiskLevel classifica o score de risco em três faixas fixas.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Limiares de classificação compartilhados entre o scorer e qualquer
// classificador a jusante. A classificação é monotônica no score.
const (
	RiskScoreHighThreshold   = 0.55
	RiskScoreMediumThreshold = 0.30
)

// ClassifyRiskLevel mapeia um score [0,1] para o nível de risco.
func ClassifyRiskLevel(score float64) RiskLevel {
	switch {
	case score >= RiskScoreHighThreshold:
		return RiskLevelHigh
	case score >= RiskScoreMediumThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// BaselineThresholds guarda o patamar "normal" de uma conta. Quando ausente
// ou com BaselineSales <= 0, o resolvedor de baseline substitui pelo perfil
// padrão configurado.
type BaselineThresholds struct {
	AccountID        string    `json:"account_id"`
	BaselineSales    float64   `json:"baseline_sales"`
	BaselineTraffic  float64   `json:"baseline_traffic"`
	BaselineReceipts float64   `json:"baseline_receipts"`
	IsDefault        bool      `json:"is_default"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RiskAssessment é uma entrada do ledger de avaliações, apenas inserida e
// lida, nunca alterada. Várias avaliações podem existir para o mesmo
// for_date; leitores escolhem sempre a de created_at mais recente.
type RiskAssessment struct {
	ID             int64     `json:"id"`
	AccountID      string    `json:"account_id"`
	ForDate        time.Time `json:"for_date"`
	CreatedAt      time.Time `json:"created_at"`
	RiskScore      float64   `json:"risk_score"`
	RiskPercentage float64   `json:"risk_percentage"`
	Level          RiskLevel `json:"level"`
	Description    string    `json:"description"`
	Factors        []string  `json:"factors"`
}

// Fontes que nomeiam qual camada da cascata de fallback respondeu.
const (
	SourceExactMatch      = "Prediction for requested date"
	SourceRecentRetention = "Weighted average of last 7 days"
	SourceRecentRisk      = "Recent predictions within 3 days"
	SourceAnyAvailable    = "Most recent available prediction"
	SourceNoData          = "No prediction data available"
)

// RiskQueryResult é a resposta do resolvedor de fallback. Sempre retornada:
// a ausência de dados vira Value nil com confiança zero, nunca um erro.
type RiskQueryResult struct {
	Value      *float64   `json:"value"`
	Source     string     `json:"source"`
	Confidence float64    `json:"confidence"`
	ForDate    *time.Time `json:"for_date"`
}

// NoDataResult é o estado terminal da cascata.
func NoDataResult() *RiskQueryResult {
	return &RiskQueryResult{
		Value:      nil,
		Source:     SourceNoData,
		Confidence: 0,
		ForDate:    nil,
	}
}

// TrendDelta compara a resposta atual do resolvedor com a média do bloco de
// 7 dias anterior. Delta nil quando um dos lados não tem dado disponível.
type TrendDelta struct {
	Delta   *float64 `json:"delta"`
	Tooltip string   `json:"tooltip"`
}
