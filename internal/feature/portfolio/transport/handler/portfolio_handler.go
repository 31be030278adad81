// Package handler はportfolioフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"investmate_backend/internal/api"
	"investmate_backend/internal/feature/portfolio/domain"
	"investmate_backend/internal/feature/portfolio/domain/entity"
	"investmate_backend/internal/feature/portfolio/transport/http/dto"
	stocksdomain "investmate_backend/internal/feature/stocks/domain"
)

// PortfolioUsecase はポートフォリオ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PortfolioUsecase interface {
	ListWithValuation(ctx context.Context) ([]entity.HoldingValuation, error)
	AddHolding(ctx context.Context, symbol, name string, shares, avgPrice float64) (*entity.Holding, error)
	UpdateHolding(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error)
	RemoveHolding(ctx context.Context, id uint) (string, error)
	Summary(ctx context.Context) (*entity.PortfolioSummary, error)
}

// PortfolioHandler はポートフォリオのHTTPリクエストを処理します。
type PortfolioHandler struct {
	uc PortfolioUsecase
}

// NewPortfolioHandler は指定されたusecaseでPortfolioHandlerの新しいインスタンスを生成します。
func NewPortfolioHandler(uc PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// List は全保有銘柄を現在値・損益計算付きで返します。
//
// エンドポイント例:
// GET /portfolio
func (h *PortfolioHandler) List(c *gin.Context) {
	valuations, err := h.uc.ListWithValuation(c.Request.Context())
	if err != nil {
		slog.Error("portfolio listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.HoldingValuationResponse, 0, len(valuations))
	for _, v := range valuations {
		out = append(out, dto.HoldingValuationResponse{
			HoldingResponse: toHoldingResponse(v.Holding),
			CurrentPrice:    v.CurrentPrice,
			TotalValue:      v.TotalValue,
			TotalCost:       v.TotalCost,
			GainLoss:        v.GainLoss,
			GainLossPercent: v.GainLossPercent,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Add は新しい保有銘柄を追加します。
// - シンボル重複時は400を返却
// - 銘柄を検証できない場合は404を返却
//
// エンドポイント例:
// POST /portfolio
func (h *PortfolioHandler) Add(c *gin.Context) {
	var req dto.CreateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("add holding validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	holding, err := h.uc.AddHolding(c.Request.Context(), req.Symbol, req.Name, req.Shares, req.AvgPrice)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSymbol):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: fmt.Sprintf("Stock %s already exists in portfolio", req.Symbol),
			})
		case errors.Is(err, stocksdomain.ErrStockNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Stock not found"})
		default:
			slog.Error("add holding failed", "symbol", req.Symbol, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toHoldingResponse(*holding))
}

// Update は保有株数・平均取得単価を部分更新します。
//
// エンドポイント例:
// PUT /portfolio/1
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update holding validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	holding, err := h.uc.UpdateHolding(c.Request.Context(), id, req.Shares, req.AvgPrice)
	if err != nil {
		if errors.Is(err, domain.ErrHoldingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Portfolio item not found"})
			return
		}
		slog.Error("update holding failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toHoldingResponse(*holding))
}

// Remove は保有銘柄を削除します。
//
// エンドポイント例:
// DELETE /portfolio/1
func (h *PortfolioHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	symbol, err := h.uc.RemoveHolding(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHoldingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Portfolio item not found"})
			return
		}
		slog.Error("remove holding failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{
		Message: fmt.Sprintf("Removed %s from portfolio", symbol),
	})
}

// Summary はポートフォリオ全体の集計を返します。
//
// エンドポイント例:
// GET /portfolio/summary
func (h *PortfolioHandler) Summary(c *gin.Context) {
	s, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		slog.Error("portfolio summary failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.PortfolioSummaryResponse{
		TotalCost:            s.TotalCost,
		TotalValue:           s.TotalValue,
		TotalGainLoss:        s.TotalGainLoss,
		TotalGainLossPercent: s.TotalGainLossPercent,
		ItemCount:            s.ItemCount,
	})
}

// parseID はパスパラメータのIDを解析します。不正な場合は400を書き込みます。
func parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id64), true
}

// toHoldingResponse はドメインのHoldingをレスポンスDTOに変換します。
func toHoldingResponse(h entity.Holding) dto.HoldingResponse {
	return dto.HoldingResponse{
		ID:        h.ID,
		Symbol:    h.Symbol,
		Name:      h.Name,
		Shares:    h.Shares,
		AvgPrice:  h.AvgPrice,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
