package domain

import (
	"time"
)

// DailyMetrics representa os contadores operacionais de uma conta em um dia.
// Unicidade garantida pelo par (account_id, date); a linha é imutável depois
// de gravada, apenas substituída por um novo upsert do mesmo dia.
type DailyMetrics struct {
	ID                int64     `json:"id"`
	AccountID         string    `json:"account_id"`
	Date              time.Time `json:"date"`
	ReceiptCount      int       `json:"receipt_count"`
	SalesVolume       float64   `json:"sales_volume"`
	CustomerTraffic   int       `json:"customer_traffic"`
	MorningReceipts   int       `json:"morning_receipts"`
	SwingReceipts     int       `json:"swing_receipts"`
	GraveyardReceipts int       `json:"graveyard_receipts"`
	MorningSales      float64   `json:"morning_sales"`
	SwingSales        float64   `json:"swing_sales"`
	GraveyardSales    float64   `json:"graveyard_sales"`
	PreviousDayRc     int       `json:"previous_day_receipt_count"`
	PreviousDaySales  float64   `json:"previous_day_sales"`
	WeeklyAvgRc       float64   `json:"weekly_avg_receipt_count"`
	WeeklyAvgSales    float64   `json:"weekly_avg_sales"`
	TransactionDrop   float64   `json:"transaction_drop_pct"`
	SalesDrop         float64   `json:"sales_drop_pct"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Normalize zera contadores negativos na borda de entrada. O motor de score
// assume entradas não negativas e precisa continuar total para qualquer linha.
func (m *DailyMetrics) Normalize() {
	if m.ReceiptCount < 0 {
		m.ReceiptCount = 0
	}
	if m.SalesVolume < 0 {
		m.SalesVolume = 0
	}
	if m.CustomerTraffic < 0 {
		m.CustomerTraffic = 0
	}
	if m.MorningReceipts < 0 {
		m.MorningReceipts = 0
	}
	if m.SwingReceipts < 0 {
		m.SwingReceipts = 0
	}
	if m.GraveyardReceipts < 0 {
		m.GraveyardReceipts = 0
	}
	if m.MorningSales < 0 {
		m.MorningSales = 0
	}
	if m.SwingSales < 0 {
		m.SwingSales = 0
	}
	if m.GraveyardSales < 0 {
		m.GraveyardSales = 0
	}
	if m.PreviousDayRc < 0 {
		m.PreviousDayRc = 0
	}
	if m.PreviousDaySales < 0 {
		m.PreviousDaySales = 0
	}
	if m.WeeklyAvgRc < 0 {
		m.WeeklyAvgRc = 0
	}
	if m.WeeklyAvgSales < 0 {
		m.WeeklyAvgSales = 0
	}
}

// HasActivity indica se a linha registra alguma movimentação no dia.
func (m *DailyMetrics) HasActivity() bool {
	return m.ReceiptCount > 0 || m.SalesVolume > 0 || m.CustomerTraffic > 0
}

// RollupStats agrega as médias da janela móvel usada na detecção de declínio.
// Days reflete a quantidade real de linhas encontradas; Days == 0 implica
// médias zeradas e nenhum cálculo de razão a jusante.
type RollupStats struct {
	AvgReceipts float64 `json:"avg_receipts"`
	AvgSales    float64 `json:"avg_sales"`
	AvgTraffic  float64 `json:"avg_traffic"`
	Days        int     `json:"days"`
}

// NewRollupStats calcula as médias da janela a partir das linhas fornecidas,
// já ordenadas da mais recente para a mais antiga pelo repositório.
func NewRollupStats(rows []*DailyMetrics) RollupStats {
	if len(rows) == 0 {
		return RollupStats{}
	}

	var sumRc, sumSales, sumCt float64
	for _, row := range rows {
		sumRc += float64(row.ReceiptCount)
		sumSales += row.SalesVolume
		sumCt += float64(row.CustomerTraffic)
	}

	days := float64(len(rows))
	return RollupStats{
		AvgReceipts: sumRc / days,
		AvgSales:    sumSales / days,
		AvgTraffic:  sumCt / days,
		Days:        len(rows),
	}
}
