// Package dto はportfolioフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

import "time"

// CreateHoldingRequest は POST /portfolio のリクエストボディです。
type CreateHoldingRequest struct {
	Symbol   string  `json:"symbol" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Shares   float64 `json:"shares" binding:"min=0"`
	AvgPrice float64 `json:"avg_price" binding:"min=0"`
}

// UpdateHoldingRequest は PUT /portfolio/:id のリクエストボディです。
// nilのフィールドは「変更しない」を意味します。
type UpdateHoldingRequest struct {
	Shares   *float64 `json:"shares" binding:"omitempty,min=0"`
	AvgPrice *float64 `json:"avg_price" binding:"omitempty,min=0"`
}

// HoldingResponse は保有銘柄1件のレスポンスです。
type HoldingResponse struct {
	ID        uint      `json:"id"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Shares    float64   `json:"shares"`
	AvgPrice  float64   `json:"avg_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HoldingValuationResponse は保有銘柄に現在値と損益計算を加えたレスポンスです。
type HoldingValuationResponse struct {
	HoldingResponse
	CurrentPrice    float64 `json:"current_price"`
	TotalValue      float64 `json:"total_value"`
	TotalCost       float64 `json:"total_cost"`
	GainLoss        float64 `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// PortfolioSummaryResponse は GET /portfolio/summary のレスポンスです。
type PortfolioSummaryResponse struct {
	TotalCost            float64 `json:"total_cost"`
	TotalValue           float64 `json:"total_value"`
	TotalGainLoss        float64 `json:"total_gain_loss"`
	TotalGainLossPercent float64 `json:"total_gain_loss_percent"`
	ItemCount            int     `json:"item_count"`
}
