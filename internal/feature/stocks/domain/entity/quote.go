// Package entity はstocksフィーチャーのドメインモデルを定義します。
package entity

// Quote はある銘柄の時点スナップショットです。
// 永続化されず、リクエストごとに外部プロバイダーから取得されます。
type Quote struct {
	Symbol  string
	Name    string
	Price   float64
	Summary string
	LogoURL string
	Country string
}

// CompanyProfile は銘柄の企業情報（概要・国）です。
type CompanyProfile struct {
	Summary string
	Country string
}

// ChartPoint はチャート描画用の1日分のデータ点です。
type ChartPoint struct {
	Date   string
	Close  float64
	Volume int64
}

// PerformanceMetrics は銘柄のパフォーマンス指標です。
// プロバイダーにデータがない指標は0になります。
type PerformanceMetrics struct {
	MarketCap        float64
	PERatio          float64
	OneYearReturn    float64
	Beta             float64
	DividendYield    float64
	PriceToBook      float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
}

// QuoteDetails はQuoteに1年分の日足チャートとパフォーマンス指標を加えたものです。
type QuoteDetails struct {
	Quote
	ChartData []ChartPoint
	Metrics   PerformanceMetrics
}
