package repositories

import (
	"context"
	"errors"

	"clothly/internal/models"
)

// ErrUnknownDriver is returned by OpenStore for an unsupported store driver.
var ErrUnknownDriver = errors.New("unknown store driver")

// ClothingRepository defines data access for one clothing collection.
type ClothingRepository interface {
	GetAll(ctx context.Context) ([]models.ClothingItem, error)
	Create(ctx context.Context, item *models.ClothingItem) error
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
