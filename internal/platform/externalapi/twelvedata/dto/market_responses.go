// Package dto defines data transfer objects for the Twelve Data API responses.
package dto

// APIError holds the error fields Twelve Data embeds in any response body.
type APIError struct {
	Code    int    `json:"code,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// QuoteResponse represents the JSON response from the /quote endpoint.
// Numeric fields are returned as strings by the API.
type QuoteResponse struct {
	APIError
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Close  string `json:"close"`
}

// ProfileResponse represents the JSON response from the /profile endpoint.
type ProfileResponse struct {
	APIError
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Country     string `json:"country"`
}

// LogoResponse represents the JSON response from the /logo endpoint.
type LogoResponse struct {
	APIError
	URL string `json:"url"`
}

// StatisticsResponse represents the JSON response from the /statistics endpoint.
// Unlike /quote, this endpoint returns numbers as JSON numbers; missing
// metrics decode to zero.
type StatisticsResponse struct {
	APIError
	Statistics struct {
		ValuationsMetrics struct {
			MarketCapitalization float64 `json:"market_capitalization"`
			TrailingPE           float64 `json:"trailing_pe"`
			PriceToBookMRQ       float64 `json:"price_to_book_mrq"`
		} `json:"valuations_metrics"`
		StockPriceSummary struct {
			Beta             float64 `json:"beta"`
			FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
			FiftyTwoWeekLow  float64 `json:"fifty_two_week_low"`
		} `json:"stock_price_summary"`
		DividendsAndSplits struct {
			ForwardAnnualDividendYield float64 `json:"forward_annual_dividend_yield"`
		} `json:"dividends_and_splits"`
	} `json:"statistics"`
}

// TimeSeriesResponse represents the JSON response from the /time_series endpoint.
// Values are ordered newest first.
type TimeSeriesResponse struct {
	APIError
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"`
	Values   []struct {
		Datetime string `json:"datetime"`
		Open     string `json:"open"`
		High     string `json:"high"`
		Low      string `json:"low"`
		Close    string `json:"close"`
		Volume   string `json:"volume"`
	} `json:"values"`
}
