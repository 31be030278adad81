package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"investmate_backend/internal/feature/portfolio/domain"
	"investmate_backend/internal/feature/portfolio/domain/entity"
	"investmate_backend/internal/feature/portfolio/transport/handler"
	stocksdomain "investmate_backend/internal/feature/stocks/domain"
)

// mockPortfolioUsecase はPortfolioUsecaseインターフェースのモック実装です。
type mockPortfolioUsecase struct {
	ListWithValuationFunc func(ctx context.Context) ([]entity.HoldingValuation, error)
	AddHoldingFunc        func(ctx context.Context, symbol, name string, shares, avgPrice float64) (*entity.Holding, error)
	UpdateHoldingFunc     func(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error)
	RemoveHoldingFunc     func(ctx context.Context, id uint) (string, error)
	SummaryFunc           func(ctx context.Context) (*entity.PortfolioSummary, error)
}

func (m *mockPortfolioUsecase) ListWithValuation(ctx context.Context) ([]entity.HoldingValuation, error) {
	return m.ListWithValuationFunc(ctx)
}

func (m *mockPortfolioUsecase) AddHolding(ctx context.Context, symbol, name string, shares, avgPrice float64) (*entity.Holding, error) {
	return m.AddHoldingFunc(ctx, symbol, name, shares, avgPrice)
}

func (m *mockPortfolioUsecase) UpdateHolding(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error) {
	return m.UpdateHoldingFunc(ctx, id, shares, avgPrice)
}

func (m *mockPortfolioUsecase) RemoveHolding(ctx context.Context, id uint) (string, error) {
	return m.RemoveHoldingFunc(ctx, id)
}

func (m *mockPortfolioUsecase) Summary(ctx context.Context) (*entity.PortfolioSummary, error) {
	return m.SummaryFunc(ctx)
}

// newPortfolioRouter はポートフォリオのルートを登録したテスト用ルータを生成します。
func newPortfolioRouter(mockUC *mockPortfolioUsecase) *gin.Engine {
	h := handler.NewPortfolioHandler(mockUC)
	router := gin.New()
	router.GET("/portfolio", h.List)
	router.POST("/portfolio", h.Add)
	router.GET("/portfolio/summary", h.Summary)
	router.PUT("/portfolio/:id", h.Update)
	router.DELETE("/portfolio/:id", h.Remove)
	return router
}

// テスト用の固定時刻
var testTime = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

var testHolding = entity.Holding{
	ID:        1,
	Symbol:    "AAPL",
	Name:      "Apple Inc.",
	Shares:    10,
	AvgPrice:  150,
	CreatedAt: testTime,
	UpdatedAt: testTime,
}

// TestPortfolioHandler_List はListのHTTPリクエスト/レスポンス処理をテストします。
func TestPortfolioHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockList       func(ctx context.Context) ([]entity.HoldingValuation, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: returns holdings with valuation",
			mockList: func(ctx context.Context) ([]entity.HoldingValuation, error) {
				return []entity.HoldingValuation{
					entity.NewHoldingValuation(testHolding, 225),
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[{
				"id":1,"symbol":"AAPL","name":"Apple Inc.","shares":10,"avg_price":150,
				"created_at":"2026-01-15T09:30:00Z","updated_at":"2026-01-15T09:30:00Z",
				"current_price":225,"total_value":2250,"total_cost":1500,
				"gain_loss":750,"gain_loss_percent":50
			}]`,
		},
		{
			name: "success: empty portfolio returns empty array",
			mockList: func(ctx context.Context) ([]entity.HoldingValuation, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: store failure returns 500",
			mockList: func(ctx context.Context) ([]entity.HoldingValuation, error) {
				return nil, errors.New("database error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPortfolioRouter(&mockPortfolioUsecase{ListWithValuationFunc: tt.mockList})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/portfolio", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestPortfolioHandler_Add はAddのHTTPリクエスト/レスポンス処理をテストします。
func TestPortfolioHandler_Add(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockAdd        func(ctx context.Context, symbol, name string, shares, avgPrice float64) (*entity.Holding, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: creates holding",
			body: `{"symbol":"aapl","name":"Apple Inc.","shares":10,"avg_price":150}`,
			mockAdd: func(ctx context.Context, symbol, name string, shares, avgPrice float64) (*entity.Holding, error) {
				assert.Equal(t, "aapl", symbol)
				assert.Equal(t, "Apple Inc.", name)
				assert.Equal(t, 10.0, shares)
				assert.Equal(t, 150.0, avgPrice)
				h := testHolding
				return &h, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"id":1,"symbol":"AAPL","name":"Apple Inc.","shares":10,"avg_price":150,
				"created_at":"2026-01-15T09:30:00Z","updated_at":"2026-01-15T09:30:00Z"
			}`,
		},
		{
			name: "error: duplicate symbol returns 400",
			body: `{"symbol":"AAPL","name":"Apple Inc.","shares":10,"avg_price":150}`,
			mockAdd: func(ctx context.Context, symbol, name string, shares, avgPrice float64) (*entity.Holding, error) {
				return nil, domain.ErrDuplicateSymbol
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Stock AAPL already exists in portfolio"}`,
		},
		{
			name: "error: unverifiable symbol returns 404",
			body: `{"symbol":"ZZZZ","name":"Unknown","shares":1,"avg_price":1}`,
			mockAdd: func(ctx context.Context, symbol, name string, shares, avgPrice float64) (*entity.Holding, error) {
				return nil, stocksdomain.ErrStockNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Stock not found"}`,
		},
		{
			name:           "error: missing required fields returns 400",
			body:           `{"shares":10}`,
			mockAdd:        nil, // バインド失敗のためusecaseには到達しない
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "error: negative shares returns 400",
			body:           `{"symbol":"AAPL","name":"Apple Inc.","shares":-1,"avg_price":150}`,
			mockAdd:        nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPortfolioRouter(&mockPortfolioUsecase{AddHoldingFunc: tt.mockAdd})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/portfolio", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestPortfolioHandler_Update はUpdateのHTTPリクエスト/レスポンス処理をテストします。
func TestPortfolioHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		body           string
		mockUpdate     func(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: partial update of shares only",
			url:  "/portfolio/1",
			body: `{"shares":20}`,
			mockUpdate: func(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error) {
				assert.Equal(t, uint(1), id)
				assert.NotNil(t, shares)
				assert.Equal(t, 20.0, *shares)
				assert.Nil(t, avgPrice)
				h := testHolding
				h.Shares = 20
				return &h, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"id":1,"symbol":"AAPL","name":"Apple Inc.","shares":20,"avg_price":150,
				"created_at":"2026-01-15T09:30:00Z","updated_at":"2026-01-15T09:30:00Z"
			}`,
		},
		{
			name: "error: missing id returns 404",
			url:  "/portfolio/999",
			body: `{"shares":20}`,
			mockUpdate: func(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error) {
				return nil, domain.ErrHoldingNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Portfolio item not found"}`,
		},
		{
			name:           "error: non-numeric id returns 400",
			url:            "/portfolio/abc",
			body:           `{"shares":20}`,
			mockUpdate:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid id"}`,
		},
		{
			name:           "error: negative shares returns 400",
			url:            "/portfolio/1",
			body:           `{"shares":-5}`,
			mockUpdate:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPortfolioRouter(&mockPortfolioUsecase{UpdateHoldingFunc: tt.mockUpdate})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPut, tt.url, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestPortfolioHandler_Remove はRemoveのHTTPリクエスト/レスポンス処理をテストします。
func TestPortfolioHandler_Remove(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockRemove     func(ctx context.Context, id uint) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: removes holding and echoes symbol",
			url:  "/portfolio/1",
			mockRemove: func(ctx context.Context, id uint) (string, error) {
				assert.Equal(t, uint(1), id)
				return "AAPL", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Removed AAPL from portfolio"}`,
		},
		{
			name: "error: missing id returns 404",
			url:  "/portfolio/999",
			mockRemove: func(ctx context.Context, id uint) (string, error) {
				return "", domain.ErrHoldingNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Portfolio item not found"}`,
		},
		{
			name:           "error: non-numeric id returns 400",
			url:            "/portfolio/abc",
			mockRemove:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPortfolioRouter(&mockPortfolioUsecase{RemoveHoldingFunc: tt.mockRemove})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodDelete, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestPortfolioHandler_Summary はSummaryのHTTPリクエスト/レスポンス処理をテストします。
func TestPortfolioHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockSummary    func(ctx context.Context) (*entity.PortfolioSummary, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns aggregate totals",
			mockSummary: func(ctx context.Context) (*entity.PortfolioSummary, error) {
				return &entity.PortfolioSummary{
					TotalCost:            3000,
					TotalValue:           3550,
					TotalGainLoss:        550,
					TotalGainLossPercent: 18.33,
					ItemCount:            2,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"total_cost":3000,"total_value":3550,"total_gain_loss":550,"total_gain_loss_percent":18.33,"item_count":2}`,
		},
		{
			name: "error: store failure returns 500",
			mockSummary: func(ctx context.Context) (*entity.PortfolioSummary, error) {
				return nil, errors.New("database error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPortfolioRouter(&mockPortfolioUsecase{SummaryFunc: tt.mockSummary})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/portfolio/summary", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
