package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

type stubRepo struct {
	domain.WorkOrderRepository
	orders map[uint]domain.WorkOrder
	counts map[domain.Status]int64
}

func (s *stubRepo) FindByID(ctx context.Context, id uint) (*domain.WorkOrder, error) {
	workOrder, ok := s.orders[id]
	if !ok {
		return nil, apperr.Newf(apperr.NotFound, "work order %d not found", id)
	}
	return &workOrder, nil
}

func (s *stubRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.WorkOrder, error) {
	result := make([]domain.WorkOrder, 0, len(s.orders))
	for _, workOrder := range s.orders {
		result = append(result, workOrder)
	}
	return result, nil
}

func (s *stubRepo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	return s.counts, nil
}

func TestWorkOrderViewElapsedSeconds(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	since := base

	repo := &stubRepo{orders: map[uint]domain.WorkOrder{
		1: {ID: 1, Status: domain.StatusInProgress, TotalLaborSeconds: 300, ActiveSince: &since},
		2: {ID: 2, Status: domain.StatusPending, TotalLaborSeconds: 120},
	}}

	handler := NewGetWorkOrderHandler(repo)
	handler.now = func() time.Time { return base.Add(45 * time.Second) }

	view, err := handler.Handle(context.Background(), GetWorkOrderQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(345), view.ElapsedSeconds)

	view, err = handler.Handle(context.Background(), GetWorkOrderQuery{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(120), view.ElapsedSeconds)
}

func TestGetWorkOrderNotFound(t *testing.T) {
	repo := &stubRepo{orders: map[uint]domain.WorkOrder{}}
	handler := NewGetWorkOrderHandler(repo)

	_, err := handler.Handle(context.Background(), GetWorkOrderQuery{ID: 99})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = handler.Handle(context.Background(), GetWorkOrderQuery{ID: 0})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestGetStatsSumsCounts(t *testing.T) {
	repo := &stubRepo{counts: map[domain.Status]int64{
		domain.StatusPending:    3,
		domain.StatusInProgress: 2,
		domain.StatusCompleted:  7,
	}}

	handler := NewGetStatsHandler(repo)
	stats, err := handler.Handle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Total)
	assert.Equal(t, int64(3), stats.Pending)
	assert.Equal(t, int64(2), stats.InProgress)
	assert.Equal(t, int64(7), stats.Completed)
}
