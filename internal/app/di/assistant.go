package di

import (
	"context"

	"investmate_backend/internal/feature/chat/adapters/gemini"
)

// NewAssistant creates a Gemini-backed assistant client.
// Credentials are read from the environment (GEMINI_API_KEY or ADC).
func NewAssistant(ctx context.Context) (*gemini.GeminiAssistant, error) {
	return gemini.NewGeminiAssistant(ctx)
}
