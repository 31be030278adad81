// Package entity はchatフィーチャーのドメインモデルを定義します。
package entity

// 会話履歴で許可されるロールです。"system"を含むその他のラベルは
// 不正な入力であり、会話は永続化されないため保存状態にはなり得ません。
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message は1つの会話ターンです。
type Message struct {
	Role    string
	Content string
}
