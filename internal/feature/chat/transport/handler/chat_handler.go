// Package handler はchatフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"investmate_backend/internal/api"
	"investmate_backend/internal/feature/chat/domain"
	"investmate_backend/internal/feature/chat/domain/entity"
	"investmate_backend/internal/feature/chat/transport/http/dto"
)

// ChatUsecase はAIアシスタント会話のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChatUsecase interface {
	Reply(ctx context.Context, message string, history []entity.Message) (string, error)
}

// ChatHandler はAIアシスタント会話のHTTPリクエストを処理します。
type ChatHandler struct {
	uc ChatUsecase
}

// NewChatHandler は指定されたusecaseでChatHandlerの新しいインスタンスを生成します。
func NewChatHandler(uc ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Chat はユーザーのメッセージをアシスタントに転送し、応答を返します。
// - リクエスト形式が不正な場合は400を返却
// - 履歴に不正なロールが含まれる場合は422を返却
// - 上流の失敗はusecase内でフォールバック応答に吸収されるため200のまま
//
// エンドポイント例:
// POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("chat validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	history := make([]entity.Message, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, entity.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := h.uc.Reply(c.Request.Context(), req.Message, history)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			slog.Warn("chat history rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{
				Error: "Role must be either 'user' or 'assistant'",
			})
			return
		}
		slog.Error("chat failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
