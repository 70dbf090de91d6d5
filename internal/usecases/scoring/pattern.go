package scoring

import (
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

// Mínimo de dias de rollup para considerar padrões de declínio confiáveis.
const minDeclineDays = 7

// patternContributions detalha os padrões anômalos detectados. Cada regra é
// disparada de forma independente e as contribuições são somadas.
type patternContributions struct {
	SalesDeclinePct   float64
	ReceiptDeclinePct float64
	SalesDecline      float64
	ReceiptDecline    float64
	ZeroConversion    float64
	LowActivity       float64
	PoorConversion    float64
}

func (c patternContributions) Total() float64 {
	return clamp01(c.SalesDecline + c.ReceiptDecline + c.ZeroConversion + c.LowActivity + c.PoorConversion)
}

// patternScore detecta padrões de declínio, conversão zero e baixa atividade
// usando os rollups da janela móvel. Rollup com menos de minDeclineDays dias
// não contribui com regras de declínio.
func patternScore(metrics *domain.DailyMetrics, rollup domain.RollupStats) patternContributions {
	contributions := patternContributions{}

	if rollup.Days >= minDeclineDays && rollup.AvgSales > 0 {
		decline := (rollup.AvgSales - metrics.SalesVolume) / rollup.AvgSales * 100
		contributions.SalesDeclinePct = decline
		switch {
		case decline > 30:
			contributions.SalesDecline = 0.30
		case decline > 15:
			contributions.SalesDecline = 0.15
		}
	}

	if rollup.Days >= minDeclineDays && rollup.AvgReceipts > 0 {
		decline := (rollup.AvgReceipts - float64(metrics.ReceiptCount)) / rollup.AvgReceipts * 100
		contributions.ReceiptDeclinePct = decline
		switch {
		case decline > 30:
			contributions.ReceiptDecline = 0.25
		case decline > 15:
			contributions.ReceiptDecline = 0.12
		}
	}

	// Houve movimento na loja mas nenhuma venda registrada
	if metrics.CustomerTraffic > 0 && metrics.ReceiptCount == 0 {
		contributions.ZeroConversion = 0.35
	}

	// Atividade absoluta muito baixa
	if metrics.ReceiptCount < 5 && metrics.SalesVolume < 500 {
		contributions.LowActivity = 0.20
	}

	// Conversão fraca do tráfego em cupons
	if metrics.CustomerTraffic > 0 {
		conversion := float64(metrics.ReceiptCount) / float64(metrics.CustomerTraffic) * 100
		if conversion < 20 {
			contributions.PoorConversion = 0.15
		}
	}

	return contributions
}
