// Package adapters はportfolioフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"investmate_backend/internal/feature/portfolio/domain"
	"investmate_backend/internal/feature/portfolio/domain/entity"
	"investmate_backend/internal/feature/portfolio/usecase"
)

// holdingGorm はHoldingRepositoryインターフェースのGORM実装です。
// PostgreSQLとSQLiteの両方で動作します。
type holdingGorm struct {
	db *gorm.DB
}

var _ usecase.HoldingRepository = (*holdingGorm)(nil)

// NewHoldingRepository は指定されたDB接続でholdingGormリポジトリの新しいインスタンスを生成します。
func NewHoldingRepository(db *gorm.DB) *holdingGorm {
	return &holdingGorm{db: db}
}

// Create は新しい保有銘柄を永続化します。
// 同一シンボルが既に存在する場合はErrDuplicateSymbolを返します。
// タイムスタンプはここで明示的に設定します。
func (r *holdingGorm) Create(ctx context.Context, h *entity.Holding) error {
	exists, err := r.ExistsBySymbol(ctx, h.Symbol)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateSymbol, h.Symbol)
	}

	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		return err
	}
	return nil
}

// ExistsBySymbol は指定シンボルの保有が既に存在するかを返します。
func (r *holdingGorm) ExistsBySymbol(ctx context.Context, symbol string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Holding{}).
		Where("symbol = ?", symbol).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll はすべての保有銘柄をストアの自然な返却順で返します。
func (r *holdingGorm) FindAll(ctx context.Context) ([]entity.Holding, error) {
	var holdings []entity.Holding
	if err := r.db.WithContext(ctx).Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

// FindByID は指定されたIDの保有銘柄を返します。
// 存在しない場合はErrHoldingNotFoundを返します。
func (r *holdingGorm) FindByID(ctx context.Context, id uint) (*entity.Holding, error) {
	var h entity.Holding
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%d", domain.ErrHoldingNotFound, id)
		}
		return nil, err
	}
	return &h, nil
}

// Update は指定されたフィールドのみを更新し、更新後の保有銘柄を返します。
// nilのフィールドは変更しません。更新タイムスタンプは常に刷新します。
func (r *holdingGorm) Update(ctx context.Context, id uint, shares, avgPrice *float64) (*entity.Holding, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if shares != nil {
		updates["shares"] = *shares
	}
	if avgPrice != nil {
		updates["avg_price"] = *avgPrice
	}

	if err := r.db.WithContext(ctx).
		Model(&entity.Holding{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// Delete は指定されたIDの保有銘柄を削除し、確認用にシンボルを返します。
// 存在しない場合はErrHoldingNotFoundを返します。
func (r *holdingGorm) Delete(ctx context.Context, id uint) (string, error) {
	h, err := r.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := r.db.WithContext(ctx).Delete(h).Error; err != nil {
		return "", err
	}
	return h.Symbol, nil
}
