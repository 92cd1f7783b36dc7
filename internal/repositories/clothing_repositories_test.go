package repositories_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"clothly/internal/config"
	"clothly/internal/logging"
	"clothly/internal/models"
	"clothly/internal/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleClothes() []models.ClothingItem {
	return []models.ClothingItem{
		{Image: "https://images.pexels.com/photos/1704120/a.jpeg", ProductName: "Oxford Shirt", Price: 59, Info: "Slim fit", Category: "shirts"},
		{Image: "https://images.pexels.com/photos/1103970/b.jpeg", ProductName: "Chino Trousers", Price: 79.5, Info: "Stretch cotton", Category: "trousers"},
	}
}

func newSQLiteRepo(t *testing.T) *repositories.GORMClothingRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repositories.OpenGORM("sqlite", dsn)
	require.NoError(t, err)

	repo, err := repositories.NewGORMClothingRepository(db, "menclothes")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(context.Background()) })
	return repo
}

// exerciseRepository runs the shared contract against any implementation.
func exerciseRepository(t *testing.T, repo repositories.ClothingRepository) {
	ctx := context.Background()

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	for _, item := range sampleClothes() {
		item := item
		require.NoError(t, repo.Create(ctx, &item))
		assert.NotEmpty(t, item.ID)
	}

	items, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	names := []string{items[0].ProductName, items[1].ProductName}
	assert.ElementsMatch(t, []string{"Oxford Shirt", "Chino Trousers"}, names)

	err = repo.Create(ctx, &models.ClothingItem{Image: "/local/path.png", ProductName: "Bad"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	items, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, repo.DeleteAll(ctx))
	items, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, repo.Ping(ctx))
}

func TestMockClothingRepository(t *testing.T) {
	exerciseRepository(t, repositories.NewMockClothingRepository())
}

func TestMockClothingRepository_KeepsInsertionOrder(t *testing.T) {
	repo := repositories.NewMockClothingRepository()
	ctx := context.Background()
	for _, item := range sampleClothes() {
		item := item
		require.NoError(t, repo.Create(ctx, &item))
	}

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Oxford Shirt", items[0].ProductName)
	assert.Equal(t, "Chino Trousers", items[1].ProductName)
}

func TestGORMClothingRepository(t *testing.T) {
	exerciseRepository(t, newSQLiteRepo(t))
}

func TestGORMClothingRepository_KeepsGivenID(t *testing.T) {
	repo := newSQLiteRepo(t)
	item := sampleClothes()[0]
	item.ID = "shirt-1"
	require.NoError(t, repo.Create(context.Background(), &item))

	items, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "shirt-1", items[0].ID)
	assert.Equal(t, 59.0, items[0].Price)
}

func TestOpenGORM_UnknownDriver(t *testing.T) {
	_, err := repositories.OpenGORM("oracle", "")
	assert.True(t, errors.Is(err, repositories.ErrUnknownDriver))
}

// countingRepository counts GetAll calls on top of the in-memory store.
type countingRepository struct {
	*repositories.MockClothingRepository
	mock.Mock
}

func (r *countingRepository) GetAll(ctx context.Context) ([]models.ClothingItem, error) {
	r.Called()
	return r.MockClothingRepository.GetAll(ctx)
}

func TestCachedClothingRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := repositories.NewRedisClient(config.RedisConfig{Addr: mr.Addr()})

	backing := &countingRepository{MockClothingRepository: repositories.NewMockClothingRepository()}
	backing.On("GetAll").Return()
	repo := repositories.NewCachedClothingRepository(backing, client, "menclothes", time.Minute, logging.Discard())
	t.Cleanup(func() { repo.Close(context.Background()) })

	exerciseRepository(t, repo)
}

func TestCachedClothingRepository_ServesFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := repositories.NewRedisClient(config.RedisConfig{Addr: mr.Addr()})
	ctx := context.Background()

	backing := &countingRepository{MockClothingRepository: repositories.NewMockClothingRepository()}
	backing.On("GetAll").Return()
	item := sampleClothes()[0]
	require.NoError(t, backing.Create(ctx, &item))

	repo := repositories.NewCachedClothingRepository(backing, client, "menclothes", time.Minute, logging.Discard())

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	second, err := repo.GetAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	backing.AssertNumberOfCalls(t, "GetAll", 1)
	assert.True(t, mr.Exists("clothes:menclothes"))

	mr.FastForward(2 * time.Minute)
	_, err = repo.GetAll(ctx)
	require.NoError(t, err)
	backing.AssertNumberOfCalls(t, "GetAll", 2)

	extra := sampleClothes()[1]
	require.NoError(t, repo.Create(ctx, &extra))
	assert.False(t, mr.Exists("clothes:menclothes"))

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCachedClothingRepository_RedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := repositories.NewRedisClient(config.RedisConfig{Addr: mr.Addr()})
	ctx := context.Background()

	backing := repositories.NewMockClothingRepository()
	item := sampleClothes()[0]
	require.NoError(t, backing.Create(ctx, &item))
	repo := repositories.NewCachedClothingRepository(backing, client, "menclothes", time.Minute, logging.Discard())

	mr.Close()

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	logger := logging.Discard()

	repo, err := repositories.OpenStore(ctx, config.StoreConfig{Driver: config.DriverMemory, Collection: "menclothes"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &repositories.MockClothingRepository{}, repo)

	_, err = repositories.OpenStore(ctx, config.StoreConfig{Driver: "couchdb"}, logger)
	assert.True(t, errors.Is(err, repositories.ErrUnknownDriver))

	repo, err = repositories.OpenStore(ctx, config.StoreConfig{
		Driver:     config.DriverSQLite,
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		Collection: "menclothes",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &repositories.GORMClothingRepository{}, repo)
	require.NoError(t, repo.Close(ctx))
}

func TestOpenStore_WithCache(t *testing.T) {
	mr := miniredis.RunT(t)

	repo, err := repositories.OpenStore(context.Background(), config.StoreConfig{
		Driver:     config.DriverMemory,
		Collection: "menclothes",
		CacheTTL:   time.Minute,
		Redis:      config.RedisConfig{Addr: mr.Addr()},
	}, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &repositories.CachedClothingRepository{}, repo)
	require.NoError(t, repo.Close(context.Background()))
}

func TestOpenStore_MongoUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for server selection to time out")
	}
	_, err := repositories.OpenStore(context.Background(), config.StoreConfig{
		Driver:         config.DriverMongo,
		MongoURI:       "mongodb://127.0.0.1:1",
		MongoDatabase:  "Clothely-ecommerce",
		Collection:     "menclothes",
		ConnectTimeout: 200 * time.Millisecond,
	}, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to MongoDB")
}
