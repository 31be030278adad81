package entity

// HoldingValuation は保有銘柄と現在値を結合した評価結果です。
// 永続化されず、読み取り時に毎回計算されます。
type HoldingValuation struct {
	Holding
	CurrentPrice    float64
	TotalValue      float64
	TotalCost       float64
	GainLoss        float64
	GainLossPercent float64
}

// PortfolioSummary はポートフォリオ全体の集計結果です。
type PortfolioSummary struct {
	TotalCost            float64
	TotalValue           float64
	TotalGainLoss        float64
	TotalGainLossPercent float64
	ItemCount            int
}

// NewHoldingValuation は保有銘柄と現在値から評価を計算します。
// 取得原価が0の場合、損益率はゼロ除算を避けるため0と定義します。
func NewHoldingValuation(h Holding, currentPrice float64) HoldingValuation {
	totalCost := h.Shares * h.AvgPrice
	totalValue := h.Shares * currentPrice
	gainLoss := totalValue - totalCost

	gainLossPercent := 0.0
	if totalCost > 0 {
		gainLossPercent = gainLoss / totalCost * 100
	}

	return HoldingValuation{
		Holding:         h,
		CurrentPrice:    currentPrice,
		TotalValue:      totalValue,
		TotalCost:       totalCost,
		GainLoss:        gainLoss,
		GainLossPercent: gainLossPercent,
	}
}
