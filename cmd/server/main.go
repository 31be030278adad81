package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"investmate_backend/internal/app/di"
	"investmate_backend/internal/app/router"
	chathandler "investmate_backend/internal/feature/chat/transport/handler"
	chatusecase "investmate_backend/internal/feature/chat/usecase"
	portfolioadapters "investmate_backend/internal/feature/portfolio/adapters"
	portfoliohandler "investmate_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "investmate_backend/internal/feature/portfolio/usecase"
	stockhandler "investmate_backend/internal/feature/stocks/transport/handler"
	stocksusecase "investmate_backend/internal/feature/stocks/usecase"
	infradb "investmate_backend/internal/platform/db"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// 外部マーケットデータプロバイダー
	market := di.NewMarket()

	// Geminiクライアント（初期化に失敗してもチャットはフォールバック応答で稼働する）
	var assistant chatusecase.AssistantClient
	if a, err := di.NewAssistant(context.Background()); err != nil {
		slog.Warn("assistant client unavailable; chat will return fallback replies", "error", err)
	} else {
		assistant = a
	}

	// Repository
	holdingRepo := portfolioadapters.NewHoldingRepository(db)

	// Usecase
	stocksUC := stocksusecase.NewStocksUsecase(market)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(holdingRepo, market)
	chatUC := chatusecase.NewChatUsecase(assistant)

	// Handler
	stockH := stockhandler.NewStockHandler(stocksUC)
	portfolioH := portfoliohandler.NewPortfolioHandler(portfolioUC)
	chatH := chathandler.NewChatHandler(chatUC)

	// フロントエンドの単一オリジンのみCORSを許可
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	// ルータ生成
	r := router.NewRouter(stockH, portfolioH, chatH, origin)

	// APIキーチェック（開発中の注意喚起）
	if os.Getenv("TWELVE_DATA_API_KEY") == "" {
		log.Println("[WARN] TWELVE_DATA_API_KEY is not set. Quote lookups will fail.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
