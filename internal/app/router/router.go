// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	chathandler "investmate_backend/internal/feature/chat/transport/handler"
	portfoliohandler "investmate_backend/internal/feature/portfolio/transport/handler"
	stockhandler "investmate_backend/internal/feature/stocks/transport/handler"
	platformhandler "investmate_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを登録したginルーターを生成します。
// CORSは設定されたフロントエンドの単一オリジンのみ許可します。
func NewRouter(stocks *stockhandler.StockHandler, portfolio *portfoliohandler.PortfolioHandler,
	chat *chathandler.ChatHandler, frontendOrigin string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// ルートはAPIドキュメントへリダイレクト
	r.GET("/", platformhandler.Root)
	r.GET("/docs", platformhandler.Docs)

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// 株価情報
	r.GET("/stock/:symbol", stocks.GetStockHandler)
	r.GET("/stock/:symbol/details", stocks.GetStockDetailsHandler)

	// ポートフォリオ
	r.GET("/portfolio", portfolio.List)
	r.POST("/portfolio", portfolio.Add)
	r.GET("/portfolio/summary", portfolio.Summary)
	r.PUT("/portfolio/:id", portfolio.Update)
	r.DELETE("/portfolio/:id", portfolio.Remove)

	// AIアシスタント
	r.POST("/chat", chat.Chat)

	return r
}
