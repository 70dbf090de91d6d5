package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

func TestBucketContribution(t *testing.T) {
	tests := []struct {
		name     string
		pct      float64
		expected float64
	}{
		{"Acima do baseline não contribui", 120, 0},
		{"Exatamente no baseline não contribui", 100, 0},
		{"Faixa 80-99", 80, salesBuckets[0]},
		{"Faixa 60-79", 60, salesBuckets[1]},
		{"Faixa 40-59", 59.9, salesBuckets[2]},
		{"Faixa 20-39", 20, salesBuckets[3]},
		{"Abaixo de 20 é a pior faixa", 19.9, salesBuckets[4]},
		{"Percentual zero cai na pior faixa", 0, salesBuckets[4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bucketContribution(tt.pct, salesBuckets))
		})
	}
}

func TestPercentOfBaseline(t *testing.T) {
	assert.Equal(t, 50.0, percentOfBaseline(2100, 4200))
	assert.Equal(t, 100.0, percentOfBaseline(4200, 4200))

	// Baseline zero ou negativo não divide, cai na pior faixa
	assert.Equal(t, 0.0, percentOfBaseline(2100, 0))
	assert.Equal(t, 0.0, percentOfBaseline(2100, -10))
}

func TestThresholdScore(t *testing.T) {
	baselines := &domain.BaselineThresholds{
		BaselineSales:    4000,
		BaselineTraffic:  100,
		BaselineReceipts: 40,
	}

	t.Run("Dia saudável não contribui em nenhuma dimensão", func(t *testing.T) {
		metrics := &domain.DailyMetrics{
			SalesVolume:     4500,
			CustomerTraffic: 110,
			ReceiptCount:    45,
		}

		contributions := thresholdScore(metrics, baselines)

		assert.Equal(t, 0.0, contributions.Sales)
		assert.Equal(t, 0.0, contributions.Traffic)
		assert.Equal(t, 0.0, contributions.Receipts)
		assert.Equal(t, 0.0, contributions.Total())
	})

	t.Run("Dia sem nenhuma atividade satura o score de limiar", func(t *testing.T) {
		metrics := &domain.DailyMetrics{}

		contributions := thresholdScore(metrics, baselines)

		assert.Equal(t, salesBuckets[4], contributions.Sales)
		assert.Equal(t, trafficBuckets[4], contributions.Traffic)
		assert.Equal(t, receiptsBuckets[4], contributions.Receipts)

		// Soma bruta 1.8 é limitada a 1
		assert.Equal(t, 1.0, contributions.Total())
	})

	t.Run("Dimensões caem em faixas independentes", func(t *testing.T) {
		metrics := &domain.DailyMetrics{
			SalesVolume:     2000, // 50% do baseline
			CustomerTraffic: 85,   // 85% do baseline
			ReceiptCount:    44,   // 110% do baseline
		}

		contributions := thresholdScore(metrics, baselines)

		assert.Equal(t, 50.0, contributions.SalesPct)
		assert.Equal(t, salesBuckets[2], contributions.Sales)
		assert.Equal(t, trafficBuckets[0], contributions.Traffic)
		assert.Equal(t, 0.0, contributions.Receipts)
	})
}
