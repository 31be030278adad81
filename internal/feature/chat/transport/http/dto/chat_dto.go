// Package dto はchatフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// ChatMessage は会話履歴の1エントリです。
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest は POST /chat のリクエストボディです。
type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history"`
}

// ChatResponse は POST /chat のレスポンスです。
type ChatResponse struct {
	Reply string `json:"reply"`
}
