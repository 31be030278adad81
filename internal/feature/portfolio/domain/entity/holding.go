// Package entity はportfolioフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Holding はポートフォリオで追跡する保有銘柄です。
// シンボルは大文字で正規化して保存し、同一シンボルの保有は1件までです。
// タイムスタンプはフレームワークに任せず、ストアが書き込み時に明示的に
// 設定します。
type Holding struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Shares    float64   `gorm:"not null;default:0"`
	AvgPrice  float64   `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}
