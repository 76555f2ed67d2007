package kafka

import "time"

// WorkOrderCompletedEvent is emitted when a work order reaches its terminal state.
type WorkOrderCompletedEvent struct {
	EventID           string    `json:"event_id"`
	EventType         string    `json:"event_type"`
	WorkOrderID       uint      `json:"work_order_id"`
	VehicleID         uint      `json:"vehicle_id"`
	TotalLaborSeconds int64     `json:"total_labor_seconds"`
	CompletedAt       time.Time `json:"completed_at"`
	Timestamp         time.Time `json:"timestamp"`
}

// PartConsumedEvent is emitted after a part debit has been committed
// against a work order.
type PartConsumedEvent struct {
	EventID           string    `json:"event_id"`
	EventType         string    `json:"event_type"`
	WorkOrderID       uint      `json:"work_order_id"`
	InventoryItemID   uint      `json:"inventory_item_id"`
	Quantity          int       `json:"quantity"`
	RemainingQuantity int       `json:"remaining_quantity"`
	Timestamp         time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeWorkOrderCompleted = "work_order.completed"
	EventTypePartConsumed       = "work_order.part_consumed"
)

// Kafka topics
const (
	TopicWorkOrderEvents = "work-order-events"
)
