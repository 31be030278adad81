// Package gemini はGoogle Gemini APIを使用したアシスタントクライアントを提供します。
package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"investmate_backend/internal/feature/chat/domain/entity"
	"investmate_backend/internal/feature/chat/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// temperature は応答のサンプリング温度です。
	temperature = 0.7
	// maxOutputTokens は応答を簡潔に保つための出力トークン上限です。
	maxOutputTokens = 500
)

// GeminiAssistant はGoogle Gemini APIで会話応答を生成します。
type GeminiAssistant struct {
	client *genai.Client
	model  string
}

// GeminiAssistantがAssistantClientを実装していることをコンパイル時に検証します。
var _ usecase.AssistantClient = (*GeminiAssistant)(nil)

// NewGeminiAssistant はGeminiAssistantの新しいインスタンスを生成します。
// 環境変数 GEMINI_API_KEY が設定されていればGemini APIバックエンドを使用し、
// 未設定の場合はADC（GOOGLE_GENAI_USE_VERTEXAI等）にフォールバックします。
func NewGeminiAssistant(ctx context.Context) (*GeminiAssistant, error) {
	var cfg *genai.ClientConfig
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg = &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiAssistant{client: client, model: DefaultModel}, nil
}

// Generate はシステム指示・会話履歴・新規メッセージから応答テキストを生成します。
// 履歴のロールはGeminiの規約（assistant→model）に写像します。
func (g *GeminiAssistant) Generate(ctx context.Context, system string, history []entity.Message, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == entity.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](temperature),
		MaxOutputTokens:   maxOutputTokens,
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
