package domain

import (
	"context"
	"time"
)

// Status is the work-order state. pending -> in_progress is re-enterable
// (pause/resume); completed is terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// WorkOrder represents one maintenance job on a vehicle. Labor time is
// accounted in sessions delimited by start/stop and summed into
// TotalLaborSeconds; ActiveSince is non-nil exactly while in_progress.
type WorkOrder struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	VehicleID         uint            `json:"vehicle_id" gorm:"not null;index"`
	Description       string          `json:"description"`
	TechnicianID      *uint           `json:"technician_id"`
	Status            Status          `json:"status" gorm:"not null;default:'pending';index"`
	TotalLaborSeconds int64           `json:"total_labor_seconds" gorm:"not null;default:0"`
	ActiveSince       *time.Time      `json:"active_since"`
	CreatedAt         time.Time       `json:"created_at"`
	CompletedAt       *time.Time      `json:"completed_at"`
	Parts             []WorkOrderPart `json:"parts" gorm:"foreignKey:WorkOrderID"`
}

// TableName specifies the table name
func (WorkOrder) TableName() string {
	return "work_orders"
}

// WorkOrderPart is the append-only record of one part consumption. It
// justifies the corresponding inventory debit and is never updated or
// deleted once committed.
type WorkOrderPart struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	WorkOrderID     uint      `json:"work_order_id" gorm:"not null;index"`
	InventoryItemID uint      `json:"inventory_item_id" gorm:"not null;index"`
	Quantity        int       `json:"quantity" gorm:"not null"`
	RequestID       *string   `json:"request_id,omitempty" gorm:"uniqueIndex"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName specifies the table name
func (WorkOrderPart) TableName() string {
	return "work_order_parts"
}

// WorkOrderRepository defines the contract for work-order data access.
// All mutating methods serialize on the work-order row so that
// start/stop/complete and part consumption never interleave for one
// order, while different orders proceed independently.
type WorkOrderRepository interface {
	// Create opens a work order against the vehicle with the given
	// normalized plate and moves that vehicle into maintenance, in one
	// transaction.
	Create(ctx context.Context, workOrder *WorkOrder, plate string) error
	FindByID(ctx context.Context, id uint) (*WorkOrder, error)
	FindAll(ctx context.Context, limit, offset int) ([]WorkOrder, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)

	// Transition locks the work-order row, applies the state change and
	// persists the result. When the order reaches completed, the vehicle
	// is released back to active in the same transaction.
	Transition(ctx context.Context, id uint, apply func(*WorkOrder) error) (*WorkOrder, error)

	// AddPart couples the inventory debit and the part append in one
	// transaction: either both commit or neither does. A replayed
	// requestID returns the previously recorded part without a second
	// debit. The int result is the item quantity remaining after the
	// debit.
	AddPart(ctx context.Context, workOrderID, itemID uint, quantity int, requestID string) (*WorkOrderPart, int, error)
}
