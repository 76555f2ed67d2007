package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invdomain "github.com/atolyetakip/workshop/internal/inventory/domain"
	vehicledomain "github.com/atolyetakip/workshop/internal/vehicle/domain"
	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

type GormWorkOrderRepository struct {
	db *gorm.DB
}

func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

func (r *GormWorkOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.WorkOrder{}, &domain.WorkOrderPart{})
}

// Create opens the work order and flips the vehicle into maintenance in
// one transaction. The vehicle row is locked so a concurrent retire or a
// second reception cannot interleave.
func (r *GormWorkOrderRepository) Create(ctx context.Context, workOrder *domain.WorkOrder, plate string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle vehicledomain.Vehicle
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("plate = ?", plate).
			First(&vehicle).Error
		if err != nil {
			return wrapDBError(err)
		}

		workOrder.VehicleID = vehicle.ID
		workOrder.Status = domain.StatusPending
		if err := tx.Create(workOrder).Error; err != nil {
			return wrapDBError(err)
		}

		return wrapDBError(tx.Model(&vehicle).
			Update("status", vehicledomain.StatusMaintenance).Error)
	})
}

func (r *GormWorkOrderRepository) FindByID(ctx context.Context, id uint) (*domain.WorkOrder, error) {
	var workOrder domain.WorkOrder
	err := r.db.WithContext(ctx).Preload("Parts").First(&workOrder, id).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	return &workOrder, nil
}

func (r *GormWorkOrderRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.WorkOrder, error) {
	var workOrders []domain.WorkOrder
	err := r.db.WithContext(ctx).
		Preload("Parts").
		Limit(limit).Offset(offset).
		Order("id desc").
		Find(&workOrders).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	return workOrders, nil
}

func (r *GormWorkOrderRepository) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	var rows []struct {
		Status domain.Status
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.WorkOrder{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError(err)
	}

	counts := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Transition serializes on the work-order row: the state change and the
// persisted result are one unit, and concurrent transitions on the same
// order queue behind the lock instead of interleaving.
func (r *GormWorkOrderRepository) Transition(ctx context.Context, id uint, apply func(*domain.WorkOrder) error) (*domain.WorkOrder, error) {
	var result *domain.WorkOrder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var workOrder domain.WorkOrder
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&workOrder, id).Error
		if err != nil {
			return wrapDBError(err)
		}

		if err := apply(&workOrder); err != nil {
			return err
		}

		// Save writes all fields, including ActiveSince back to NULL
		// after a stop.
		if err := tx.Omit("Parts").Save(&workOrder).Error; err != nil {
			return wrapDBError(err)
		}

		if workOrder.Status == domain.StatusCompleted {
			// release the vehicle back into service
			err := tx.Model(&vehicledomain.Vehicle{}).
				Where("id = ? AND status = ?", workOrder.VehicleID, vehicledomain.StatusMaintenance).
				Update("status", vehicledomain.StatusActive).Error
			if err != nil {
				return wrapDBError(err)
			}
		}

		result = &workOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddPart is the consumption coordinator: one transaction locks the
// work-order row (status gate and per-order serialization), debits the
// item with the same conditional update the ledger uses, and appends the
// consumption record. Either the debit and the append both commit, or
// neither does.
func (r *GormWorkOrderRepository) AddPart(ctx context.Context, workOrderID, itemID uint, quantity int, requestID string) (*domain.WorkOrderPart, int, error) {
	var part *domain.WorkOrderPart
	var remaining int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var workOrder domain.WorkOrder
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&workOrder, workOrderID).Error
		if err != nil {
			return wrapDBError(err)
		}

		if workOrder.Status == domain.StatusCompleted {
			return apperr.Newf(apperr.InvalidTransition,
				"cannot add parts to completed work order %d", workOrderID)
		}

		// Idempotent replay: a retried request id returns the part that
		// was already recorded, without a second debit. The work-order
		// lock serializes racing replays for this order; the unique
		// index backstops the rest.
		if requestID != "" {
			var existing domain.WorkOrderPart
			err := tx.Where("request_id = ?", requestID).First(&existing).Error
			switch {
			case err == nil:
				if existing.WorkOrderID != workOrderID {
					return apperr.Newf(apperr.Duplicate,
						"request id %q was already used for work order %d", requestID, existing.WorkOrderID)
				}
				var item invdomain.Item
				if err := tx.First(&item, existing.InventoryItemID).Error; err != nil {
					return wrapDBError(err)
				}
				part = &existing
				remaining = item.Quantity
				return nil
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return wrapDBError(err)
			}
		}

		res := tx.Model(&invdomain.Item{}).
			Where("id = ? AND quantity >= ?", itemID, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if res.Error != nil {
			return wrapDBError(res.Error)
		}
		if res.RowsAffected == 0 {
			var item invdomain.Item
			if err := tx.First(&item, itemID).Error; err != nil {
				return wrapDBError(err)
			}
			return apperr.Newf(apperr.InsufficientStock,
				"insufficient stock for %q: available %d, requested %d", item.SKU, item.Quantity, quantity)
		}

		var item invdomain.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return wrapDBError(err)
		}

		record := domain.WorkOrderPart{
			WorkOrderID:     workOrderID,
			InventoryItemID: itemID,
			Quantity:        quantity,
		}
		if requestID != "" {
			record.RequestID = &requestID
		}
		if err := tx.Create(&record).Error; err != nil {
			return wrapDBError(err)
		}

		part = &record
		remaining = item.Quantity
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return part, remaining, nil
}

// wrapDBError translates driver errors into engine error kinds.
func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperr.New(apperr.Duplicate, err)
	}
	return apperr.New(apperr.Unavailable, err)
}
