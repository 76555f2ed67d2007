package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/atolyetakip/workshop/internal/inventory/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{})
}

func (r *GormItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (r *GormItemRepository) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return &item, nil
}

func (r *GormItemRepository) FindBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&item).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return &item, nil
}

func (r *GormItemRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("sku").Find(&items).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	return items, nil
}

func (r *GormItemRepository) FindLowStock(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.WithContext(ctx).
		Where("quantity <= critical_level").
		Order("quantity").
		Find(&items).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	return items, nil
}

// ReserveAndConsume debits stock with a single conditional UPDATE so the
// availability check and the decrement cannot interleave with another
// consumer. RowsAffected discriminates success from rejection; a
// follow-up read inside the same transaction tells NotFound apart from
// InsufficientStock.
func (r *GormItemRepository) ReserveAndConsume(ctx context.Context, id uint, quantity int) (int, error) {
	var remaining int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Item{}).
			Where("id = ? AND quantity >= ?", id, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if res.Error != nil {
			return wrapDBError(res.Error)
		}
		if res.RowsAffected == 0 {
			var item domain.Item
			if err := tx.First(&item, id).Error; err != nil {
				return wrapDBError(err)
			}
			return apperr.Newf(apperr.InsufficientStock,
				"insufficient stock for %q: available %d, requested %d", item.SKU, item.Quantity, quantity)
		}

		var item domain.Item
		if err := tx.First(&item, id).Error; err != nil {
			return wrapDBError(err)
		}
		remaining = item.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

// AdjustBySKU applies a signed stock movement under the same
// conditional-update discipline as ReserveAndConsume.
func (r *GormItemRepository) AdjustBySKU(ctx context.Context, sku string, delta int) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Item{}).
			Where("sku = ? AND quantity + ? >= 0", sku, delta).
			Update("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return wrapDBError(res.Error)
		}
		if res.RowsAffected == 0 {
			var current domain.Item
			if err := tx.Where("sku = ?", sku).First(&current).Error; err != nil {
				return wrapDBError(err)
			}
			return apperr.Newf(apperr.InsufficientStock,
				"stock movement rejected for %q: available %d, requested change %d", sku, current.Quantity, delta)
		}
		return tx.Where("sku = ?", sku).First(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// wrapDBError translates driver errors into engine error kinds.
func wrapDBError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperr.New(apperr.Duplicate, err)
	}
	return apperr.New(apperr.Unavailable, err)
}
