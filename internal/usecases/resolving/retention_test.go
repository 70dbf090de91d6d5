package resolving

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

func TestApplyPerformanceModifier(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		metrics  *domain.DailyMetrics
		level    domain.RiskLevel
		expected float64
	}{
		{
			name:     "Sem métricas aplica apenas o ajuste de nível",
			base:     50,
			metrics:  nil,
			level:    domain.RiskLevelHigh,
			expected: 48,
		},
		{
			name:     "Nível baixo ganha bônus",
			base:     50,
			metrics:  nil,
			level:    domain.RiskLevelLow,
			expected: 51.5,
		},
		{
			name: "Quedas fortes e atividade fraca acumulam penalidades",
			base: 50,
			metrics: &domain.DailyMetrics{
				TransactionDrop: 40, // -5
				SalesDrop:       30, // -3
				ReceiptCount:    2,  // atividade 5 < 10: -3
				CustomerTraffic: 3,
			},
			level:    domain.RiskLevelHigh, // -2
			expected: 37,
		},
		{
			name: "Dia forte acumula bônus",
			base: 50,
			metrics: &domain.DailyMetrics{
				TransactionDrop: 0,  // +1
				SalesDrop:       0,
				ReceiptCount:    25, // atividade 20+30 > 40: +2
				CustomerTraffic: 60,
			},
			level:    domain.RiskLevelLow, // +1.5
			expected: 54.5,
		},
		{
			name: "Resultado nunca fica abaixo de zero",
			base: 3,
			metrics: &domain.DailyMetrics{
				TransactionDrop: 50,
				SalesDrop:       40,
			},
			level:    domain.RiskLevelHigh,
			expected: 0,
		},
		{
			name: "Resultado nunca passa de cem",
			base: 99,
			metrics: &domain.DailyMetrics{
				TransactionDrop: 0,
				ReceiptCount:    25,
				CustomerTraffic: 60,
			},
			level:    domain.RiskLevelLow,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, applyPerformanceModifier(tt.base, tt.metrics, tt.level), 0.0001)
		})
	}
}
