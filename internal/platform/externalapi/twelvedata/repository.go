package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"investmate_backend/internal/feature/stocks/domain"
	"investmate_backend/internal/feature/stocks/domain/entity"
	"investmate_backend/internal/feature/stocks/usecase"
	"investmate_backend/internal/platform/externalapi/twelvedata/dto"
)

// TwelveDataMarket はTwelve Data外部APIから株価データを取得するMarketRepository実装です。
type TwelveDataMarket struct {
	cfg    Config
	client *http.Client
}

// TwelveDataMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket は指定された設定とHTTPクライアントでTwelveDataMarketの新しいインスタンスを生成します。
func NewTwelveDataMarket(cfg Config, client *http.Client) *TwelveDataMarket {
	return &TwelveDataMarket{cfg: cfg, client: client}
}

// getJSON は指定エンドポイントにGETリクエストを送り、レスポンスをoutにデコードします。
func (t *TwelveDataMarket) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("apikey", t.cfg.TwelveDataAPIKey)
	u := fmt.Sprintf("%s%s?%s", t.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// checkAPIError はレスポンスボディに埋め込まれたエラーを検査します。
// 銘柄が見つからないエラーはErrStockNotFoundに分類します。
func checkAPIError(e dto.APIError, symbol string) error {
	if e.Status != "error" {
		return nil
	}
	if e.Code == http.StatusBadRequest || e.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrStockNotFound, symbol)
	}
	return fmt.Errorf("twelvedata: %s", e.Message)
}

// GetQuote は/quoteエンドポイントから銘柄名と現在値を取得します。
// 現在値が返されない場合、Priceは0になります。
func (t *TwelveDataMarket) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.QuoteResponse
	if err := t.getJSON(ctx, "/quote", q, &body); err != nil {
		return entity.Quote{}, err
	}
	if err := checkAPIError(body.APIError, symbol); err != nil {
		return entity.Quote{}, err
	}

	price := 0.0
	if body.Close != "" {
		p, err := strconv.ParseFloat(body.Close, 64)
		if err != nil {
			return entity.Quote{}, fmt.Errorf("parse close %q: %w", body.Close, err)
		}
		price = p
	}

	return entity.Quote{
		Symbol: body.Symbol,
		Name:   body.Name,
		Price:  price,
	}, nil
}

// GetProfile は/profileエンドポイントから企業概要と国を取得します。
func (t *TwelveDataMarket) GetProfile(ctx context.Context, symbol string) (entity.CompanyProfile, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.ProfileResponse
	if err := t.getJSON(ctx, "/profile", q, &body); err != nil {
		return entity.CompanyProfile{}, err
	}
	if err := checkAPIError(body.APIError, symbol); err != nil {
		return entity.CompanyProfile{}, err
	}

	return entity.CompanyProfile{
		Summary: body.Description,
		Country: body.Country,
	}, nil
}

// GetLogoURL は/logoエンドポイントから企業ロゴのURLを取得します。
func (t *TwelveDataMarket) GetLogoURL(ctx context.Context, symbol string) (string, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.LogoResponse
	if err := t.getJSON(ctx, "/logo", q, &body); err != nil {
		return "", err
	}
	if err := checkAPIError(body.APIError, symbol); err != nil {
		return "", err
	}

	return body.URL, nil
}

// GetStatistics は/statisticsエンドポイントからパフォーマンス指標を取得します。
// プロバイダーに存在しない指標は0のまま返します。
func (t *TwelveDataMarket) GetStatistics(ctx context.Context, symbol string) (entity.PerformanceMetrics, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	var body dto.StatisticsResponse
	if err := t.getJSON(ctx, "/statistics", q, &body); err != nil {
		return entity.PerformanceMetrics{}, err
	}
	if err := checkAPIError(body.APIError, symbol); err != nil {
		return entity.PerformanceMetrics{}, err
	}

	s := body.Statistics
	return entity.PerformanceMetrics{
		MarketCap:        s.ValuationsMetrics.MarketCapitalization,
		PERatio:          s.ValuationsMetrics.TrailingPE,
		Beta:             s.StockPriceSummary.Beta,
		DividendYield:    s.DividendsAndSplits.ForwardAnnualDividendYield,
		PriceToBook:      s.ValuationsMetrics.PriceToBookMRQ,
		FiftyTwoWeekHigh: s.StockPriceSummary.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  s.StockPriceSummary.FiftyTwoWeekLow,
	}, nil
}

// GetDailySeries は/time_seriesエンドポイントから日足の時系列データを取得します。
// APIの返却順（新しい順）のまま返します。
func (t *TwelveDataMarket) GetDailySeries(ctx context.Context, symbol string, outputsize int) ([]entity.ChartPoint, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", "1day")
	q.Set("outputsize", strconv.Itoa(outputsize))

	var body dto.TimeSeriesResponse
	if err := t.getJSON(ctx, "/time_series", q, &body); err != nil {
		return nil, err
	}
	if err := checkAPIError(body.APIError, symbol); err != nil {
		return nil, err
	}

	points := make([]entity.ChartPoint, 0, len(body.Values))
	for _, v := range body.Values {
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		var vol int64
		if v.Volume != "" {
			vol, err = strconv.ParseInt(v.Volume, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
			}
		}
		points = append(points, entity.ChartPoint{
			Date:   v.Datetime,
			Close:  c,
			Volume: vol,
		})
	}
	return points, nil
}
