// Package usecase は株価情報取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"investmate_backend/internal/feature/stocks/domain"
	"investmate_backend/internal/feature/stocks/domain/entity"
)

const (
	// DefaultName は銘柄名が取得できない場合のプレースホルダーです。
	DefaultName = "N/A"
	// DefaultSummary は企業概要が取得できない場合のプレースホルダーです。
	DefaultSummary = "Summary not available."
	// DefaultPlaceholder はロゴURL・国が取得できない場合のプレースホルダーです。
	DefaultPlaceholder = "N/A"
	// OneYearTradingDays は1年分の日足データの取得件数です。
	OneYearTradingDays = 252
)

// MarketRepository は外部の株価データプロバイダーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetQuote は銘柄名と現在値を取得します。現在値がない場合Priceは0です。
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	// GetProfile は企業概要と国を取得します。
	GetProfile(ctx context.Context, symbol string) (entity.CompanyProfile, error)
	// GetLogoURL は企業ロゴのURLを取得します。
	GetLogoURL(ctx context.Context, symbol string) (string, error)
	// GetStatistics はパフォーマンス指標を取得します。欠損指標は0です。
	GetStatistics(ctx context.Context, symbol string) (entity.PerformanceMetrics, error)
	// GetDailySeries は日足の時系列データを新しい順で取得します。
	GetDailySeries(ctx context.Context, symbol string, outputsize int) ([]entity.ChartPoint, error)
}

// stocksUsecase は株価情報取得のユースケースを定義します。
type stocksUsecase struct {
	market MarketRepository
}

// NewStocksUsecase はstocksUsecaseの新しいインスタンスを生成します。
func NewStocksUsecase(market MarketRepository) *stocksUsecase {
	return &stocksUsecase{market: market}
}

// GetQuote は銘柄の現在スナップショットを取得します。
//
// シンボルは大文字に正規化してから照会します。プロバイダーが銘柄名と
// 現在値の両方を返さない場合はErrStockNotFoundを返します。企業概要・
// ロゴ・国は補助情報のため、取得に失敗してもプレースホルダーで埋めて
// 結果を返します。
func (u *stocksUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	q, err := u.market.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if q.Name == "" && q.Price == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrStockNotFound, symbol)
	}

	q.Symbol = symbol
	if q.Name == "" {
		q.Name = DefaultName
	}

	if p, err := u.market.GetProfile(ctx, symbol); err != nil {
		slog.Warn("profile lookup failed, using placeholders", "symbol", symbol, "error", err)
	} else {
		q.Summary = p.Summary
		q.Country = p.Country
	}
	if logo, err := u.market.GetLogoURL(ctx, symbol); err != nil {
		slog.Warn("logo lookup failed, using placeholder", "symbol", symbol, "error", err)
	} else {
		q.LogoURL = logo
	}

	if q.Summary == "" {
		q.Summary = DefaultSummary
	}
	if q.LogoURL == "" {
		q.LogoURL = DefaultPlaceholder
	}
	if q.Country == "" {
		q.Country = DefaultPlaceholder
	}

	return &q, nil
}

// GetQuoteDetails はGetQuoteに加えて1年分の日足チャートとパフォーマンス指標を取得します。
//
// 現在値が確認できない銘柄はErrStockNotFoundになります。指標・時系列の
// 取得でプロバイダーが予期しないエラーを返した場合は、元のエラーを
// 添えたErrUpstreamとして呼び出し元に伝播します。
func (u *stocksUsecase) GetQuoteDetails(ctx context.Context, symbol string) (*entity.QuoteDetails, error) {
	q, err := u.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if q.Price == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrStockNotFound, q.Symbol)
	}

	details := &entity.QuoteDetails{Quote: *q}

	metrics, err := u.market.GetStatistics(ctx, q.Symbol)
	if err != nil {
		// 指標データを持たない銘柄（ETF等）はゼロ値のまま続行する
		if !errors.Is(err, domain.ErrStockNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
		}
		slog.Warn("statistics unavailable", "symbol", q.Symbol, "error", err)
	}

	series, err := u.market.GetDailySeries(ctx, q.Symbol, OneYearTradingDays)
	if err != nil {
		if !errors.Is(err, domain.ErrStockNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
		}
		slog.Warn("time series unavailable", "symbol", q.Symbol, "error", err)
	}

	// プロバイダーは新しい順で返すため、チャート用に古い順へ並べ替える
	chart := make([]entity.ChartPoint, 0, len(series))
	for i := len(series) - 1; i >= 0; i-- {
		p := series[i]
		p.Close = round2(p.Close)
		chart = append(chart, p)
	}
	details.ChartData = chart

	metrics.OneYearReturn = oneYearReturn(chart)
	details.Metrics = metrics

	return details, nil
}

// oneYearReturn は最古と最新の終値から1年リターン（%）を計算します。
// 時系列が空の場合は0です。
func oneYearReturn(chart []entity.ChartPoint) float64 {
	if len(chart) == 0 {
		return 0
	}
	first := chart[0].Close
	last := chart[len(chart)-1].Close
	if first == 0 {
		return 0
	}
	return round2((last - first) / first * 100)
}

// round2 は小数第2位に丸めます。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
