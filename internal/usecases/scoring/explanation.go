package scoring

import (
	"fmt"
	"sort"

	"github.com/vfg2006/retention-radar-api/internal/domain"
)

// Lista máxima de fatores exibidos no painel.
const maxFactors = 5

// Par fixo de fatores para dias sem nenhuma atividade registrada.
var noActivityFactors = []string{
	"No business activity recorded",
	"Add transaction data for accurate assessment",
}

type rankedFactor struct {
	weight float64
	text   string
}

// buildFactors deriva a lista ordenada de fatores (até maxFactors) a partir
// das mesmas entradas usadas pelos scorers. Dia sem atividade alguma vira o
// par fixo de fatores; a lista nunca é vazia.
func buildFactors(
	metrics *domain.DailyMetrics,
	baselines *domain.BaselineThresholds,
	rollup domain.RollupStats,
	thresholds thresholdContributions,
	patterns patternContributions,
) []string {
	if !metrics.HasActivity() {
		factors := make([]string, len(noActivityFactors))
		copy(factors, noActivityFactors)
		return factors
	}

	candidates := make([]rankedFactor, 0, 8)

	if metrics.CustomerTraffic > 0 && metrics.ReceiptCount == 0 {
		candidates = append(candidates, rankedFactor{
			weight: 0.95,
			text:   fmt.Sprintf("No sales recorded despite %d customer visits", metrics.CustomerTraffic),
		})
	}

	switch {
	case thresholds.SalesPct < 40:
		candidates = append(candidates, rankedFactor{
			weight: 0.90,
			text:   fmt.Sprintf("Sales volume critically low at %.0f%% of baseline", thresholds.SalesPct),
		})
	case thresholds.SalesPct < 80:
		candidates = append(candidates, rankedFactor{
			weight: 0.70,
			text:   fmt.Sprintf("Sales volume below baseline (%.0f%% of expected)", thresholds.SalesPct),
		})
	}

	switch {
	case thresholds.TrafficPct < 40:
		candidates = append(candidates, rankedFactor{
			weight: 0.85,
			text:   fmt.Sprintf("Customer traffic sharply down at %.0f%% of baseline", thresholds.TrafficPct),
		})
	case thresholds.TrafficPct < 80:
		candidates = append(candidates, rankedFactor{
			weight: 0.60,
			text:   fmt.Sprintf("Customer traffic below baseline (%.0f%% of expected)", thresholds.TrafficPct),
		})
	}

	switch {
	case thresholds.ReceiptsPct < 40:
		candidates = append(candidates, rankedFactor{
			weight: 0.80,
			text:   fmt.Sprintf("Receipt count critically low at %.0f%% of baseline", thresholds.ReceiptsPct),
		})
	case thresholds.ReceiptsPct < 80:
		candidates = append(candidates, rankedFactor{
			weight: 0.55,
			text:   fmt.Sprintf("Receipt count below baseline (%.0f%% of expected)", thresholds.ReceiptsPct),
		})
	}

	if metrics.CustomerTraffic > 0 && metrics.ReceiptCount > 0 {
		conversion := float64(metrics.ReceiptCount) / float64(metrics.CustomerTraffic) * 100
		if conversion < 20 {
			candidates = append(candidates, rankedFactor{
				weight: 0.65,
				text:   fmt.Sprintf("Low conversion: %.1f%% of visitors purchasing", conversion),
			})
		}
	}

	if metrics.ReceiptCount > 0 && baselines.BaselineReceipts > 0 {
		avgTicket := metrics.SalesVolume / float64(metrics.ReceiptCount)
		expectedTicket := baselines.BaselineSales / baselines.BaselineReceipts
		if expectedTicket > 0 && avgTicket < expectedTicket*0.6 {
			candidates = append(candidates, rankedFactor{
				weight: 0.50,
				text:   fmt.Sprintf("Average ticket down to %.2f (expected %.2f)", avgTicket, expectedTicket),
			})
		}
	}

	if rollup.Days >= minDeclineDays && patterns.SalesDecline > 0 {
		candidates = append(candidates, rankedFactor{
			weight: 0.75,
			text:   fmt.Sprintf("Sales declining %.0f%% versus recent %d-day average", patterns.SalesDeclinePct, rollup.Days),
		})
	}

	if len(candidates) == 0 {
		return []string{"Activity within expected baseline levels"}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	if len(candidates) > maxFactors {
		candidates = candidates[:maxFactors]
	}

	factors := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		factors = append(factors, candidate.text)
	}

	return factors
}

// buildDescription seleciona a narrativa fixa pelo nível classificado e pela
// faixa do percentual de vendas sobre o baseline.
func buildDescription(level domain.RiskLevel, salesPct float64, hasActivity bool) string {
	if !hasActivity {
		return "No business activity recorded for this day; assessment based on absence of data."
	}

	switch level {
	case domain.RiskLevelHigh:
		if salesPct < 20 {
			return fmt.Sprintf("Critical churn risk: sales collapsed to %.0f%% of baseline. Immediate follow-up recommended.", salesPct)
		}
		return fmt.Sprintf("High churn risk: key metrics are well below baseline, with sales at %.0f%% of expected.", salesPct)
	case domain.RiskLevelMedium:
		if salesPct < 60 {
			return fmt.Sprintf("Moderate churn risk: sales at %.0f%% of baseline with softening activity.", salesPct)
		}
		return "Moderate churn risk: some metrics are trailing the account baseline."
	default:
		if salesPct >= 100 {
			return "Healthy account: metrics at or above baseline."
		}
		return fmt.Sprintf("Low churn risk: metrics close to baseline, with sales at %.0f%% of expected.", salesPct)
	}
}
