package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

// Dia de colapso total dispara seis candidatos de uma vez: vendas, tráfego e
// cupons críticos, queda sustentada, conversão baixa e tíquete médio
// derrubado. A lista exibida corta no limite e descarta o candidato de menor
// peso (o tíquete médio).
func TestBuildFactors_corteNoLimite(t *testing.T) {
	metrics := &domain.DailyMetrics{
		SalesVolume:     300,
		CustomerTraffic: 100,
		ReceiptCount:    10,
	}
	baselines := &domain.BaselineThresholds{
		BaselineSales:    40000,
		BaselineTraffic:  450,
		BaselineReceipts: 120,
	}
	rollup := domain.RollupStats{Days: 10}
	thresholds := thresholdContributions{
		SalesPct:    1,
		TrafficPct:  22,
		ReceiptsPct: 8,
	}
	patterns := patternContributions{
		SalesDecline:    0.30,
		SalesDeclinePct: 40,
	}

	factors := buildFactors(metrics, baselines, rollup, thresholds, patterns)

	assert.Len(t, factors, maxFactors)
	assert.Equal(t, []string{
		"Sales volume critically low at 1% of baseline",
		"Customer traffic sharply down at 22% of baseline",
		"Receipt count critically low at 8% of baseline",
		"Sales declining 40% versus recent 10-day average",
		"Low conversion: 10.0% of visitors purchasing",
	}, factors)

	for _, factor := range factors {
		assert.NotContains(t, factor, "Average ticket")
	}
}

func TestBuildFactors_semAtividade(t *testing.T) {
	factors := buildFactors(
		&domain.DailyMetrics{},
		&domain.BaselineThresholds{BaselineSales: 40000, BaselineTraffic: 450, BaselineReceipts: 120},
		domain.RollupStats{},
		thresholdContributions{},
		patternContributions{},
	)

	assert.Equal(t, noActivityFactors, factors)
}

func TestBuildFactors_diaSaudavelNuncaVazio(t *testing.T) {
	factors := buildFactors(
		&domain.DailyMetrics{SalesVolume: 42000, CustomerTraffic: 460, ReceiptCount: 125},
		&domain.BaselineThresholds{BaselineSales: 40000, BaselineTraffic: 450, BaselineReceipts: 120},
		domain.RollupStats{Days: 14},
		thresholdContributions{SalesPct: 105, TrafficPct: 102, ReceiptsPct: 104},
		patternContributions{},
	)

	assert.Equal(t, []string{"Activity within expected baseline levels"}, factors)
}
