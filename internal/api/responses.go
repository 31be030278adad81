// Package api は全フィーチャー共通のHTTPレスポンス型を定義します。
package api

// ErrorResponse はエラー時の標準JSONレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は確認メッセージのみを返すレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}
