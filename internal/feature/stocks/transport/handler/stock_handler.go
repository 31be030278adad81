// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"investmate_backend/internal/api"
	"investmate_backend/internal/feature/stocks/domain"
	"investmate_backend/internal/feature/stocks/domain/entity"
	"investmate_backend/internal/feature/stocks/transport/http/dto"
)

// StocksUsecase は株価情報取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StocksUsecase interface {
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	GetQuoteDetails(ctx context.Context, symbol string) (*entity.QuoteDetails, error)
}

// StockHandler は株価情報のHTTPリクエストを処理します。
type StockHandler struct {
	uc StocksUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc StocksUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetStockHandler は銘柄の現在スナップショットをJSONで返します。
//
// エンドポイント例:
// GET /stock/AAPL
func (h *StockHandler) GetStockHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	q, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, domain.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Stock not found or incomplete data."})
			return
		}
		slog.Error("quote lookup failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toStockResponse(*q))
}

// GetStockDetailsHandler は銘柄の詳細（チャート・指標付き）をJSONで返します。
//
// エンドポイント例:
// GET /stock/AAPL/details
func (h *StockHandler) GetStockDetailsHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	d, err := h.uc.GetQuoteDetails(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, domain.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Stock not found"})
			return
		}
		slog.Error("stock details lookup failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := dto.StockDetailsResponse{
		StockResponse: toStockResponse(d.Quote),
		ChartData:     make([]dto.ChartPoint, 0, len(d.ChartData)),
		PerformanceMetrics: dto.PerformanceMetrics{
			MarketCap:        d.Metrics.MarketCap,
			PERatio:          d.Metrics.PERatio,
			OneYearReturn:    d.Metrics.OneYearReturn,
			Beta:             d.Metrics.Beta,
			DividendYield:    d.Metrics.DividendYield,
			PriceToBook:      d.Metrics.PriceToBook,
			FiftyTwoWeekHigh: d.Metrics.FiftyTwoWeekHigh,
			FiftyTwoWeekLow:  d.Metrics.FiftyTwoWeekLow,
		},
	}
	for _, p := range d.ChartData {
		out.ChartData = append(out.ChartData, dto.ChartPoint{
			Date:   p.Date,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}

// toStockResponse はドメインのQuoteをレスポンスDTOに変換します。
func toStockResponse(q entity.Quote) dto.StockResponse {
	return dto.StockResponse{
		Symbol:  q.Symbol,
		Name:    q.Name,
		Price:   q.Price,
		Summary: q.Summary,
		LogoURL: q.LogoURL,
		Country: q.Country,
	}
}
