package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clothly/internal/metrics"
	"clothly/internal/models"
	"clothly/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CatalogImportedEvent is the routing key of import notifications.
const CatalogImportedEvent = "catalog.imported"

// EventPublisher publishes JSON events to a broker.
type EventPublisher interface {
	PublishJSON(routingKey string, payload interface{}) error
}

// ClothingService handles the clothing collection.
type ClothingService struct {
	repo       repositories.ClothingRepository
	collection string
	events     EventPublisher
	logger     logrus.FieldLogger
	tracer     trace.Tracer
}

// NewClothingService creates a new ClothingService. events may be nil.
func NewClothingService(repo repositories.ClothingRepository, collection string, events EventPublisher, logger logrus.FieldLogger) *ClothingService {
	return &ClothingService{
		repo:       repo,
		collection: collection,
		events:     events,
		logger:     logger,
		tracer:     otel.Tracer("clothly/services"),
	}
}

// Collection returns the name of the served collection.
func (s *ClothingService) Collection() string {
	return s.collection
}

// ListClothes returns every item of the collection, unfiltered. The result is
// never nil.
func (s *ClothingService) ListClothes(ctx context.Context) ([]models.ClothingItem, error) {
	ctx, span := s.tracer.Start(ctx, "ClothingService.ListClothes",
		trace.WithAttributes(attribute.String("collection", s.collection)))
	defer span.End()

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list clothes")
		return nil, fmt.Errorf("failed to list %s: %w", s.collection, err)
	}
	if items == nil {
		items = []models.ClothingItem{}
	}

	span.SetAttributes(attribute.Int("items.count", len(items)))
	metrics.SetCatalogItems(s.collection, len(items))
	return items, nil
}

// Import writes items into the collection. Every item is validated before
// anything is written; with replace the collection is emptied first. It
// returns the number of items written.
func (s *ClothingService) Import(ctx context.Context, items []models.ClothingItem, replace bool) (int, error) {
	ctx, span := s.tracer.Start(ctx, "ClothingService.Import",
		trace.WithAttributes(attribute.String("collection", s.collection), attribute.Int("items.count", len(items))))
	defer span.End()

	var errs []error
	for i, item := range items {
		if err := models.ValidateClothingItem(item); err != nil {
			errs = append(errs, fmt.Errorf("item %d (%q): %w", i, item.ProductName, err))
		}
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		span.SetStatus(codes.Error, "validation")
		return 0, err
	}

	if replace {
		if err := s.repo.DeleteAll(ctx); err != nil {
			span.RecordError(err)
			return 0, fmt.Errorf("failed to clear %s: %w", s.collection, err)
		}
	}

	written := 0
	for i := range items {
		items[i].Document = nil
		if err := s.repo.Create(ctx, &items[i]); err != nil {
			span.RecordError(err)
			return written, fmt.Errorf("failed to import item %d (%q): %w", i, items[i].ProductName, err)
		}
		written++
	}

	s.logger.WithFields(logrus.Fields{
		"collection": s.collection,
		"count":      written,
		"replaced":   replace,
	}).Info("Imported clothes")

	s.publishImported(written, replace)
	return written, nil
}

func (s *ClothingService) publishImported(count int, replace bool) {
	if s.events == nil {
		return
	}
	event := models.CatalogImported{
		ImportID:   uuid.New().String(),
		Collection: s.collection,
		Count:      count,
		Replaced:   replace,
		ImportedAt: time.Now().UTC(),
	}
	if err := s.events.PublishJSON(CatalogImportedEvent, event); err != nil {
		s.logger.WithError(err).WithField("import_id", event.ImportID).Warn("Failed to publish catalog event")
	}
}

// Ping checks the store connection.
func (s *ClothingService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
