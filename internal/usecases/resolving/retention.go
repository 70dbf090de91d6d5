package resolving

import (
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

// applyPerformanceModifier ajusta a figura base de retenção (100 − risco)
// pelas quedas recentes de transação/venda, pela atividade absoluta do dia e
// pelo nível classificado. O resultado fica sempre em [0,100], mesmo com
// percentuais de queda extremos.
func applyPerformanceModifier(base float64, metrics *domain.DailyMetrics, level domain.RiskLevel) float64 {
	adjusted := base

	if metrics != nil {
		switch {
		case metrics.TransactionDrop > 30:
			adjusted -= 5
		case metrics.TransactionDrop > 15:
			adjusted -= 2
		case metrics.TransactionDrop < 5:
			adjusted += 1
		}

		switch {
		case metrics.SalesDrop > 25:
			adjusted -= 3
		case metrics.SalesDrop > 10:
			adjusted -= 1
		}

		activityScore := minInt(20, metrics.ReceiptCount) + minInt(30, metrics.CustomerTraffic)
		switch {
		case activityScore > 40:
			adjusted += 2
		case activityScore < 10:
			adjusted -= 3
		}
	}

	switch level {
	case domain.RiskLevelHigh:
		adjusted -= 2
	case domain.RiskLevelLow:
		adjusted += 1.5
	}

	return clampPercentage(adjusted)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
