package repositories

import (
	"context"
	"fmt"
	"time"

	"clothly/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// clothingDocument is the shape written for a validated item. Reads go
// through plainDocument instead so that stored documents come back as they
// are.
type clothingDocument struct {
	ID          interface{} `bson:"_id,omitempty"`
	Image       string      `bson:"image"`
	ProductName string      `bson:"productName"`
	Price       float64     `bson:"price"`
	Info        string      `bson:"info"`
	Category    string      `bson:"category"`
}

func newClothingDocument(item models.ClothingItem) clothingDocument {
	doc := clothingDocument{
		Image:       item.Image,
		ProductName: item.ProductName,
		Price:       item.Price,
		Info:        item.Info,
		Category:    item.Category,
	}
	if item.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(item.ID); err == nil {
			doc.ID = oid
		} else {
			doc.ID = item.ID
		}
	}
	return doc
}

// plainValue replaces BSON types with their JSON renderings: ObjectIDs
// become hex strings, dates become times and decimals become strings.
func plainValue(v interface{}) interface{} {
	switch x := v.(type) {
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC()
	case primitive.Decimal128:
		return x.String()
	case primitive.M:
		return plainDocument(x)
	case primitive.D:
		return plainDocument(x.Map())
	case primitive.A:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

func plainDocument(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = plainValue(v)
	}
	return out
}

func documentID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// MongoClothingRepository is a MongoDB implementation of ClothingRepository.
type MongoClothingRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     logrus.FieldLogger
}

// OpenMongo connects to MongoDB and pings the primary. The connection is
// dropped again when the ping fails.
func OpenMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(timeout).SetConnectTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	return client, nil
}

// NewMongoClothingRepository creates a repository over database.collection.
func NewMongoClothingRepository(client *mongo.Client, database, collection string, logger logrus.FieldLogger) *MongoClothingRepository {
	return &MongoClothingRepository{
		client:     client,
		collection: client.Database(database).Collection(collection),
		logger:     logger.WithField("collection", collection),
	}
}

// GetAll returns every document of the collection as stored. A document
// that cannot be decoded is logged and skipped, one with a value that cannot
// be cast is logged and returned uncast.
func (r *MongoClothingRepository) GetAll(ctx context.Context) ([]models.ClothingItem, error) {
	cur, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all clothes: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]models.ClothingItem, 0, cur.RemainingBatchLength())
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			r.logger.WithError(err).WithField("_id", cur.Current.Lookup("_id").String()).
				Warn("Skipping undecodable clothing document")
			continue
		}

		item, err := models.ClothingItemFromDocument(plainDocument(doc))
		if err != nil {
			r.logger.WithError(err).WithField("_id", item.ID).Warn("Returning clothing document uncast")
		}
		items = append(items, item)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to decode clothes: %w", err)
	}
	return items, nil
}

// Create validates and inserts an item. A missing id is assigned by the store.
func (r *MongoClothingRepository) Create(ctx context.Context, item *models.ClothingItem) error {
	if err := models.ValidateClothingItem(*item); err != nil {
		return err
	}

	res, err := r.collection.InsertOne(ctx, newClothingDocument(*item))
	if err != nil {
		return fmt.Errorf("failed to create clothing item: %w", err)
	}
	item.ID = documentID(res.InsertedID)
	return nil
}

// DeleteAll removes every document of the collection.
func (r *MongoClothingRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to delete clothes: %w", err)
	}
	return nil
}

// Ping checks that the primary is reachable.
func (r *MongoClothingRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (r *MongoClothingRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
