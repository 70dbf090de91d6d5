package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRiskLevel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected RiskLevel
	}{
		{"Score zero é baixo", 0, RiskLevelLow},
		{"Imediatamente abaixo do corte médio", 0.299, RiskLevelLow},
		{"Exatamente no corte médio", 0.30, RiskLevelMedium},
		{"Imediatamente abaixo do corte alto", 0.549, RiskLevelMedium},
		{"Exatamente no corte alto", 0.55, RiskLevelHigh},
		{"Score máximo é alto", 1, RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRiskLevel(tt.score))
		})
	}
}

func TestNewRollupStats(t *testing.T) {
	t.Run("Sem linhas o rollup fica vazio", func(t *testing.T) {
		rollup := NewRollupStats(nil)

		assert.Equal(t, 0, rollup.Days)
		assert.Equal(t, 0.0, rollup.AvgSales)
	})

	t.Run("Médias sobre as linhas fornecidas", func(t *testing.T) {
		rows := []*DailyMetrics{
			{ReceiptCount: 30, SalesVolume: 3000, CustomerTraffic: 90},
			{ReceiptCount: 10, SalesVolume: 1000, CustomerTraffic: 30},
		}

		rollup := NewRollupStats(rows)

		assert.Equal(t, 2, rollup.Days)
		assert.Equal(t, 20.0, rollup.AvgReceipts)
		assert.Equal(t, 2000.0, rollup.AvgSales)
		assert.Equal(t, 60.0, rollup.AvgTraffic)
	})
}

func TestDailyMetrics_Normalize(t *testing.T) {
	metrics := &DailyMetrics{
		ReceiptCount:    -5,
		SalesVolume:     -100,
		CustomerTraffic: 40,
	}

	metrics.Normalize()

	assert.Equal(t, 0, metrics.ReceiptCount)
	assert.Equal(t, 0.0, metrics.SalesVolume)
	assert.Equal(t, 40, metrics.CustomerTraffic)
}

func TestDailyMetrics_HasActivity(t *testing.T) {
	assert.False(t, (&DailyMetrics{}).HasActivity())
	assert.True(t, (&DailyMetrics{ReceiptCount: 1}).HasActivity())
	assert.True(t, (&DailyMetrics{SalesVolume: 0.5}).HasActivity())
	assert.True(t, (&DailyMetrics{CustomerTraffic: 3}).HasActivity())
}
