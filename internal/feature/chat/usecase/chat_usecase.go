// Package usecase はAIアシスタントとの会話のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"investmate_backend/internal/feature/chat/domain"
	"investmate_backend/internal/feature/chat/domain/entity"
)

// SystemPrompt はすべての会話の先頭に1回だけ付与される固定のシステム指示です。
const SystemPrompt = `You are an AI investing assistant for InvestMate, a beginner-friendly investing sandbox platform.

Your role is to:
- Help new investors learn about stocks, investing concepts, and financial literacy
- Provide educational explanations about stock market basics
- Answer questions about portfolio management and diversification
- Explain financial terms in simple, beginner-friendly language
- Offer general investing guidance (NOT personalized financial advice)

Guidelines:
- Keep responses clear, concise, and educational
- Use simple language suitable for beginners
- Encourage learning and smart investing practices
- Never guarantee returns or make specific investment recommendations
- Remind users this is a learning sandbox, not real trading
- Be encouraging and supportive of users learning to invest

Remember: You're a teacher, not a financial advisor. Focus on education over advice.`

// FallbackReply は上流の言語モデルに到達できない場合に返す固定の応答です。
const FallbackReply = "I'm having trouble connecting right now. Please try again in a moment."

// AssistantClient はホストされた言語モデルへの送信を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AssistantClient interface {
	// Generate はシステム指示・会話履歴・新規メッセージから応答テキストを生成します。
	Generate(ctx context.Context, system string, history []entity.Message, message string) (string, error)
}

// chatUsecase はAIアシスタント会話のユースケースを定義します。
type chatUsecase struct {
	assistant AssistantClient
}

// NewChatUsecase はchatUsecaseの新しいインスタンスを生成します。
func NewChatUsecase(assistant AssistantClient) *chatUsecase {
	return &chatUsecase{assistant: assistant}
}

// Reply は会話履歴と新規メッセージをアシスタントに転送し、応答を返します。
//
// 履歴の全エントリのロールを検証し、"user"と"assistant"以外（"system"を
// 含む）が1つでもあれば、上流を呼び出す前にErrInvalidRoleで失敗します。
// 上流の失敗（認証・ネットワーク・クォータ）は呼び出し元には伝播させず、
// ログに記録したうえで固定のフォールバック応答を返します。
func (u *chatUsecase) Reply(ctx context.Context, message string, history []entity.Message) (string, error) {
	for i, m := range history {
		if m.Role != entity.RoleUser && m.Role != entity.RoleAssistant {
			return "", fmt.Errorf("%w: %q at index %d", domain.ErrInvalidRole, m.Role, i)
		}
	}

	if u.assistant == nil {
		slog.Error("assistant client is not configured, returning fallback reply")
		return FallbackReply, nil
	}

	reply, err := u.assistant.Generate(ctx, SystemPrompt, history, message)
	if err != nil {
		slog.Error("assistant request failed, returning fallback reply", "error", err)
		return FallbackReply, nil
	}
	return reply, nil
}
