package command

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// fakeWorkOrderRepo is an in-memory stand-in that mirrors the repository's
// locking discipline with a single mutex.
type fakeWorkOrderRepo struct {
	mu         sync.Mutex
	orders     map[uint]*domain.WorkOrder
	stock      map[uint]int
	parts      map[string]domain.WorkOrderPart
	nextID     uint
	nextPartID uint
}

func newFakeRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{
		orders: make(map[uint]*domain.WorkOrder),
		stock:  make(map[uint]int),
		parts:  make(map[string]domain.WorkOrderPart),
	}
}

func (f *fakeWorkOrderRepo) Create(ctx context.Context, workOrder *domain.WorkOrder, plate string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	workOrder.ID = f.nextID
	workOrder.VehicleID = 1
	workOrder.CreatedAt = time.Now()
	copied := *workOrder
	f.orders[workOrder.ID] = &copied
	return nil
}

func (f *fakeWorkOrderRepo) FindByID(ctx context.Context, id uint) (*domain.WorkOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	workOrder, ok := f.orders[id]
	if !ok {
		return nil, apperr.Newf(apperr.NotFound, "work order %d not found", id)
	}
	copied := *workOrder
	return &copied, nil
}

func (f *fakeWorkOrderRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.WorkOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]domain.WorkOrder, 0, len(f.orders))
	for _, workOrder := range f.orders {
		result = append(result, *workOrder)
	}
	return result, nil
}

func (f *fakeWorkOrderRepo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[domain.Status]int64)
	for _, workOrder := range f.orders {
		counts[workOrder.Status]++
	}
	return counts, nil
}

func (f *fakeWorkOrderRepo) Transition(ctx context.Context, id uint, apply func(*domain.WorkOrder) error) (*domain.WorkOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	workOrder, ok := f.orders[id]
	if !ok {
		return nil, apperr.Newf(apperr.NotFound, "work order %d not found", id)
	}
	if err := apply(workOrder); err != nil {
		return nil, err
	}
	copied := *workOrder
	return &copied, nil
}

func (f *fakeWorkOrderRepo) AddPart(ctx context.Context, workOrderID, itemID uint, quantity int, requestID string) (*domain.WorkOrderPart, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	workOrder, ok := f.orders[workOrderID]
	if !ok {
		return nil, 0, apperr.Newf(apperr.NotFound, "work order %d not found", workOrderID)
	}
	if workOrder.Status == domain.StatusCompleted {
		return nil, 0, apperr.Newf(apperr.InvalidTransition, "work order %d is completed", workOrderID)
	}

	if requestID != "" {
		if existing, ok := f.parts[requestID]; ok {
			if existing.WorkOrderID != workOrderID {
				return nil, 0, apperr.Newf(apperr.Duplicate, "request id already used")
			}
			copied := existing
			return &copied, f.stock[itemID], nil
		}
	}

	available := f.stock[itemID]
	if available < quantity {
		return nil, 0, apperr.Newf(apperr.InsufficientStock,
			"item %d: requested %d, available %d", itemID, quantity, available)
	}
	f.stock[itemID] = available - quantity

	f.nextPartID++
	part := domain.WorkOrderPart{
		ID:              f.nextPartID,
		WorkOrderID:     workOrderID,
		InventoryItemID: itemID,
		Quantity:        quantity,
		CreatedAt:       time.Now(),
	}
	if requestID != "" {
		rid := requestID
		part.RequestID = &rid
		f.parts[requestID] = part
	}
	return &part, f.stock[itemID], nil
}

func TestCreateWorkOrderNormalizesPlate(t *testing.T) {
	repo := newFakeRepo()
	handler := NewCreateWorkOrderHandler(repo)

	workOrder, err := handler.Handle(context.Background(), CreateWorkOrderCommand{
		VehiclePlate: " 34 abc 123 ",
		Description:  "Brake pad replacement",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, workOrder.Status)
	assert.NotZero(t, workOrder.ID)
}

func TestCreateWorkOrderValidation(t *testing.T) {
	repo := newFakeRepo()
	handler := NewCreateWorkOrderHandler(repo)

	_, err := handler.Handle(context.Background(), CreateWorkOrderCommand{
		VehiclePlate: "not-a-plate",
		Description:  "anything",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	_, err = handler.Handle(context.Background(), CreateWorkOrderCommand{
		VehiclePlate: "34ABC123",
		Description:  "   ",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestStartStopCompleteFlow(t *testing.T) {
	repo := newFakeRepo()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	create := NewCreateWorkOrderHandler(repo)
	workOrder, err := create.Handle(context.Background(), CreateWorkOrderCommand{
		VehiclePlate: "34ABC123",
		Description:  "Timing belt",
	})
	require.NoError(t, err)

	start := NewStartWorkOrderHandler(repo)
	start.now = func() time.Time { return base }
	started, err := start.Handle(context.Background(), StartWorkOrderCommand{ID: workOrder.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, started.Status)

	stop := NewStopWorkOrderHandler(repo)
	stop.now = func() time.Time { return base.Add(300 * time.Second) }
	stopped, err := stop.Handle(context.Background(), StopWorkOrderCommand{ID: workOrder.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stopped.Status)
	assert.Equal(t, int64(300), stopped.TotalLaborSeconds)

	start.now = func() time.Time { return base.Add(1000 * time.Second) }
	_, err = start.Handle(context.Background(), StartWorkOrderCommand{ID: workOrder.ID})
	require.NoError(t, err)

	complete := NewCompleteWorkOrderHandler(repo, nil)
	complete.now = func() time.Time { return base.Add(1120 * time.Second) }
	completed, err := complete.Handle(context.Background(), CompleteWorkOrderCommand{ID: workOrder.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)
	assert.Equal(t, int64(420), completed.TotalLaborSeconds)
	require.NotNil(t, completed.CompletedAt)

	// completion is terminal
	_, err = complete.Handle(context.Background(), CompleteWorkOrderCommand{ID: workOrder.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidTransition, apperr.KindOf(err))
}

func TestAddPartValidation(t *testing.T) {
	repo := newFakeRepo()
	handler := NewAddPartHandler(repo, nil)

	_, err := handler.Handle(context.Background(), AddPartCommand{WorkOrderID: 0, InventoryItemID: 1, Quantity: 1})
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	_, err = handler.Handle(context.Background(), AddPartCommand{WorkOrderID: 1, InventoryItemID: 0, Quantity: 1})
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	_, err = handler.Handle(context.Background(), AddPartCommand{WorkOrderID: 1, InventoryItemID: 1, Quantity: 0})
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	_, err = handler.Handle(context.Background(), AddPartCommand{WorkOrderID: 1, InventoryItemID: 1, Quantity: -3})
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestAddPartInsufficientStock(t *testing.T) {
	repo := newFakeRepo()
	repo.stock[7] = 2

	create := NewCreateWorkOrderHandler(repo)
	workOrder, err := create.Handle(context.Background(), CreateWorkOrderCommand{
		VehiclePlate: "34ABC123",
		Description:  "Oil change",
	})
	require.NoError(t, err)

	handler := NewAddPartHandler(repo, nil)
	_, err = handler.Handle(context.Background(), AddPartCommand{
		WorkOrderID:     workOrder.ID,
		InventoryItemID: 7,
		Quantity:        3,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.InsufficientStock, apperr.KindOf(err))
	assert.Equal(t, 2, repo.stock[7], "failed debit must not change stock")
}

func TestAddPartOnCompletedOrderFails(t *testing.T) {
	repo := newFakeRepo()
	repo.stock[7] = 10

	create := NewCreateWorkOrderHandler(repo)
	workOrder, err := create.Handle(context.Background(), CreateWorkOrderCommand{
		VehiclePlate: "34ABC123",
		Description:  "Suspension check",
	})
	require.NoError(t, err)

	complete := NewCompleteWorkOrderHandler(repo, nil)
	_, err = complete.Handle(context.Background(), CompleteWorkOrderCommand{ID: workOrder.ID})
	require.NoError(t, err)

	handler := NewAddPartHandler(repo, nil)
	_, err = handler.Handle(context.Background(), AddPartCommand{
		WorkOrderID:     workOrder.ID,
		InventoryItemID: 7,
		Quantity:        1,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidTransition, apperr.KindOf(err))
	assert.Equal(t, 10, repo.stock[7])
}

func TestAddPartIdempotentReplay(t *testing.T) {
	repo := newFakeRepo()
	repo.stock[7] = 5

	create := NewCreateWorkOrderHandler(repo)
	workOrder, err := create.Handle(context.Background(), CreateWorkOrderCommand{
		VehiclePlate: "34ABC123",
		Description:  "Filter swap",
	})
	require.NoError(t, err)

	handler := NewAddPartHandler(repo, nil)
	cmd := AddPartCommand{
		WorkOrderID:     workOrder.ID,
		InventoryItemID: 7,
		Quantity:        2,
		RequestID:       "req-42",
	}

	first, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.stock[7])

	// retry after an ambiguous failure must not debit a second time
	replay, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, first.ID, replay.ID)
	assert.Equal(t, 3, repo.stock[7])
}

func TestAddPartConcurrentLastUnit(t *testing.T) {
	repo := newFakeRepo()
	repo.stock[7] = 1

	create := NewCreateWorkOrderHandler(repo)
	workOrder, err := create.Handle(context.Background(), CreateWorkOrderCommand{
		VehiclePlate: "34ABC123",
		Description:  "Spark plug",
	})
	require.NoError(t, err)

	handler := NewAddPartHandler(repo, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = handler.Handle(context.Background(), AddPartCommand{
				WorkOrderID:     workOrder.ID,
				InventoryItemID: 7,
				Quantity:        1,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, apperr.InsufficientStock, apperr.KindOf(err))
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent consumer wins the last unit")
	assert.Equal(t, 0, repo.stock[7])
}
