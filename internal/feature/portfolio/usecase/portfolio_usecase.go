// Package usecase はポートフォリオ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"investmate_backend/internal/feature/portfolio/domain"
	"investmate_backend/internal/feature/portfolio/domain/entity"
	stocksdomain "investmate_backend/internal/feature/stocks/domain"
	stocksentity "investmate_backend/internal/feature/stocks/domain/entity"
)

// HoldingRepository は保有銘柄の永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type HoldingRepository interface {
	// Create は新しい保有銘柄を永続化します。シンボル重複時はErrDuplicateSymbolを返します。
	Create(ctx context.Context, h *entity.Holding) error
	// ExistsBySymbol は指定シンボルの保有が既に存在するかを返します。
	ExistsBySymbol(ctx context.Context, symbol string) (bool, error)
	// FindAll はすべての保有銘柄をストアの自然な返却順で返します。
	FindAll(ctx context.Context) ([]entity.Holding, error)
	// FindByID は指定IDの保有銘柄を返します。不在時はErrHoldingNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Holding, error)
	// Update は指定されたフィールドのみを更新し、更新後の保有銘柄を返します。
	Update(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error)
	// Delete は保有銘柄を削除し、確認用にシンボルを返します。
	Delete(ctx context.Context, id uint) (string, error)
}

// QuoteGateway は銘柄の現在値を取得するゲートウェイを抽象化します。
// 評価・集計では保有1件につき1回の照会を行います。
type QuoteGateway interface {
	GetQuote(ctx context.Context, symbol string) (stocksentity.Quote, error)
}

// portfolioUsecase はポートフォリオ操作のユースケースを定義します。
type portfolioUsecase struct {
	holdings HoldingRepository
	quotes   QuoteGateway
}

// NewPortfolioUsecase はportfolioUsecaseの新しいインスタンスを生成します。
func NewPortfolioUsecase(holdings HoldingRepository, quotes QuoteGateway) *portfolioUsecase {
	return &portfolioUsecase{holdings: holdings, quotes: quotes}
}

// currentPrice は銘柄の現在値を取得します。
// 取得に失敗した場合は一覧・集計を壊さないよう0へ縮退します。
func (u *portfolioUsecase) currentPrice(ctx context.Context, symbol string) float64 {
	q, err := u.quotes.GetQuote(ctx, symbol)
	if err != nil {
		slog.Warn("quote lookup failed, degrading price to zero", "symbol", symbol, "error", err)
		return 0
	}
	return q.Price
}

// ListWithValuation はすべての保有銘柄を現在値と結合して評価を返します。
//
// 個別銘柄の照会失敗は現在値0として扱い、一覧全体は失敗させません。
// 順序はストアの返却順のままです。
func (u *portfolioUsecase) ListWithValuation(ctx context.Context) ([]entity.HoldingValuation, error) {
	holdings, err := u.holdings.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.HoldingValuation, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, entity.NewHoldingValuation(h, u.currentPrice(ctx, h.Symbol)))
	}
	return out, nil
}

// AddHolding は新しい保有銘柄を追加します。
//
// シンボルは大文字に正規化します。既に追跡中のシンボルはErrDuplicateSymbol、
// ゲートウェイで現在値を確認できないシンボルはErrStockNotFoundになります。
// いずれの失敗でもストアへの書き込みは行いません。
func (u *portfolioUsecase) AddHolding(ctx context.Context, symbol, name string, shares, avgPrice float64) (*entity.Holding, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	exists, err := u.holdings.ExistsBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateSymbol, symbol)
	}

	// 書き込み前に銘柄の実在を現在値で検証する
	q, err := u.quotes.GetQuote(ctx, symbol)
	if err != nil || q.Price == 0 {
		return nil, fmt.Errorf("%w: %s", stocksdomain.ErrStockNotFound, symbol)
	}

	h := &entity.Holding{
		Symbol:   symbol,
		Name:     name,
		Shares:   shares,
		AvgPrice: avgPrice,
	}
	if err := u.holdings.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// UpdateHolding は保有株数・平均取得単価を部分更新します。
// nilのフィールドは変更されません。
func (u *portfolioUsecase) UpdateHolding(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error) {
	return u.holdings.Update(ctx, id, shares, avgPrice)
}

// RemoveHolding は保有銘柄を削除し、確認用にシンボルを返します。
func (u *portfolioUsecase) RemoveHolding(ctx context.Context, id uint) (string, error) {
	return u.holdings.Delete(ctx, id)
}

// Summary はポートフォリオ全体の取得原価・評価額・損益を集計します。
//
// 個別銘柄の照会失敗はListWithValuationと同様に現在値0へ縮退します。
// 同じ照会結果を前提とすれば、集計値は一覧の各項目の合計と一致します。
func (u *portfolioUsecase) Summary(ctx context.Context) (*entity.PortfolioSummary, error) {
	holdings, err := u.holdings.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var totalCost, totalValue float64
	for _, h := range holdings {
		price := u.currentPrice(ctx, h.Symbol)
		totalCost += h.Shares * h.AvgPrice
		totalValue += h.Shares * price
	}

	totalGainLoss := totalValue - totalCost
	totalGainLossPercent := 0.0
	if totalCost > 0 {
		totalGainLossPercent = totalGainLoss / totalCost * 100
	}

	return &entity.PortfolioSummary{
		TotalCost:            totalCost,
		TotalValue:           totalValue,
		TotalGainLoss:        totalGainLoss,
		TotalGainLossPercent: totalGainLossPercent,
		ItemCount:            len(holdings),
	}, nil
}
