package repositories

import (
	"context"
	"sync"

	"clothly/internal/models"

	"github.com/google/uuid"
)

// MockClothingRepository is an in-memory implementation of ClothingRepository.
// Items are returned in insertion order.
type MockClothingRepository struct {
	items []models.ClothingItem
	mu    sync.RWMutex
}

// NewMockClothingRepository creates a new instance of MockClothingRepository.
func NewMockClothingRepository() *MockClothingRepository {
	return &MockClothingRepository{
		items: make([]models.ClothingItem, 0),
	}
}

// GetAll returns all items.
func (r *MockClothingRepository) GetAll(ctx context.Context) ([]models.ClothingItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.ClothingItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// Create validates and appends an item.
func (r *MockClothingRepository) Create(ctx context.Context, item *models.ClothingItem) error {
	if err := models.ValidateClothingItem(*item); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items = append(r.items, *item)
	return nil
}

// DeleteAll empties the collection.
func (r *MockClothingRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	return nil
}

func (r *MockClothingRepository) Ping(ctx context.Context) error { return nil }

func (r *MockClothingRepository) Close(ctx context.Context) error { return nil }
