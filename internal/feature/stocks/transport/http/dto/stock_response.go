// Package dto はstocksフィーチャーのHTTPレスポンス型を定義します。
package dto

// StockResponse は GET /stock/:symbol のレスポンスです。
type StockResponse struct {
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Summary string  `json:"summary"`
	LogoURL string  `json:"logo_url"`
	Country string  `json:"country"`
}

// ChartPoint はチャート描画用の1日分のデータ点です。
type ChartPoint struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// PerformanceMetrics は銘柄のパフォーマンス指標です。
type PerformanceMetrics struct {
	MarketCap        float64 `json:"market_cap"`
	PERatio          float64 `json:"pe_ratio"`
	OneYearReturn    float64 `json:"one_year_return"`
	Beta             float64 `json:"beta"`
	DividendYield    float64 `json:"dividend_yield"`
	PriceToBook      float64 `json:"price_to_book"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low"`
}

// StockDetailsResponse は GET /stock/:symbol/details のレスポンスです。
type StockDetailsResponse struct {
	StockResponse
	ChartData          []ChartPoint       `json:"chart_data"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
}
