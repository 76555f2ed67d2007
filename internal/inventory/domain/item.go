package domain

import (
	"context"
	"time"
)

// Item represents a stocked part in the workshop inventory.
// Quantity is never observable as negative at any committed state.
type Item struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null;index"`
	SKU           string    `json:"sku" gorm:"uniqueIndex;not null"`
	Quantity      int       `json:"quantity" gorm:"not null;default:0"`
	CriticalLevel int       `json:"critical_level" gorm:"not null;default:5"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "inventory_items"
}

// IsCritical reports whether the item is at or below its alert threshold.
// Advisory only; it never blocks consumption.
func (i *Item) IsCritical() bool {
	return i.Quantity <= i.CriticalLevel
}

// ItemRepository defines the contract for inventory data access
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id uint) (*Item, error)
	FindBySKU(ctx context.Context, sku string) (*Item, error)
	FindAll(ctx context.Context, limit, offset int) ([]Item, error)
	FindLowStock(ctx context.Context) ([]Item, error)

	// ReserveAndConsume atomically debits quantity from the item if and
	// only if enough stock is available, returning the remaining quantity.
	// The check and the decrement are a single conditional update; two
	// concurrent consumers of the last unit can never both succeed.
	ReserveAndConsume(ctx context.Context, id uint, quantity int) (int, error)

	// AdjustBySKU applies a signed stock movement, rejecting any change
	// that would take the quantity below zero.
	AdjustBySKU(ctx context.Context, sku string, delta int) (*Item, error)
}
