package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/atolyetakip/workshop/internal/vehicle/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

type GormVehicleRepository struct {
	db *gorm.DB
}

func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

func (r *GormVehicleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Vehicle{})
}

func (r *GormVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (r *GormVehicleRepository) FindByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return &vehicle, nil
}

func (r *GormVehicleRepository) FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&vehicle).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return &vehicle, nil
}

func (r *GormVehicleRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("id").Find(&vehicles).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	return vehicles, nil
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
