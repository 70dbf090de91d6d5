package scoring

import (
	"github.com/vfg2006/retention-radar-api/internal/domain"
)

// Contribuições aditivas por faixa de percentual do baseline. A intenção de
// peso (vendas 40%, tráfego 35%, cupons 25%) está expressa nas magnitudes
// das contribuições, não em um multiplicador literal.
var (
	salesBuckets    = [5]float64{0.05, 0.15, 0.30, 0.50, 0.70}
	trafficBuckets  = [5]float64{0.04, 0.12, 0.25, 0.40, 0.60}
	receiptsBuckets = [5]float64{0.03, 0.08, 0.20, 0.35, 0.50}
)

// thresholdContributions guarda a contribuição de cada dimensão para o score
// de limiar, junto com o percentual do baseline que a gerou. Os percentuais
// alimentam o gerador de explicações.
type thresholdContributions struct {
	SalesPct    float64
	TrafficPct  float64
	ReceiptsPct float64
	Sales       float64
	Traffic     float64
	Receipts    float64
}

func (c thresholdContributions) Total() float64 {
	return clamp01(c.Sales + c.Traffic + c.Receipts)
}

// thresholdScore mapeia as métricas do dia, como percentual do baseline, em
// contribuições aditivas de risco por dimensão. Baseline zero é tratado como
// percentual zero (pior faixa) em vez de dividir por zero.
func thresholdScore(metrics *domain.DailyMetrics, baselines *domain.BaselineThresholds) thresholdContributions {
	contributions := thresholdContributions{
		SalesPct:    percentOfBaseline(metrics.SalesVolume, baselines.BaselineSales),
		TrafficPct:  percentOfBaseline(float64(metrics.CustomerTraffic), baselines.BaselineTraffic),
		ReceiptsPct: percentOfBaseline(float64(metrics.ReceiptCount), baselines.BaselineReceipts),
	}

	contributions.Sales = bucketContribution(contributions.SalesPct, salesBuckets)
	contributions.Traffic = bucketContribution(contributions.TrafficPct, trafficBuckets)
	contributions.Receipts = bucketContribution(contributions.ReceiptsPct, receiptsBuckets)

	return contributions
}

func percentOfBaseline(value, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return value / baseline * 100
}

func bucketContribution(pct float64, buckets [5]float64) float64 {
	switch {
	case pct >= 100:
		return 0
	case pct >= 80:
		return buckets[0]
	case pct >= 60:
		return buckets[1]
	case pct >= 40:
		return buckets[2]
	case pct >= 20:
		return buckets[3]
	default:
		return buckets[4]
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
