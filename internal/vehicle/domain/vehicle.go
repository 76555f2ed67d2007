package domain

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/atolyetakip/workshop/pkg/apperr"
)

// Status is the vehicle lifecycle state. A vehicle under an open work
// order is in maintenance; retired vehicles stay on record forever.
type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

// Vehicle represents a vehicle registered at reception
type Vehicle struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Plate     string    `json:"plate" gorm:"uniqueIndex;not null"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Status    Status    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Vehicle) TableName() string {
	return "vehicles"
}

// Turkish registration shape: province code, letter group, number group.
var plateRe = regexp.MustCompile(`^[0-9]{2}[A-Z]{1,3}[0-9]{2,4}$`)

// NormalizePlate canonicalizes a raw plate (trim, strip inner whitespace,
// uppercase) and validates it against the registration grammar.
func NormalizePlate(raw string) (string, error) {
	plate := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if plate == "" {
		return "", apperr.Newf(apperr.InvalidInput, "plate is required")
	}
	if !plateRe.MatchString(plate) {
		return "", apperr.Newf(apperr.InvalidInput, "plate %q does not match the registration format", plate)
	}
	return plate, nil
}

// VehicleRepository defines the contract for vehicle data access
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *Vehicle) error
	FindByID(ctx context.Context, id uint) (*Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*Vehicle, error)
	FindAll(ctx context.Context, limit, offset int) ([]Vehicle, error)
}
