package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"clothly/internal/models"
	"clothly/internal/repositories"
	"clothly/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `items:
  - image: https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg
    productName: Denim Jacket
    price: 89.99
    info: Washed blue denim
    category: jackets
  - image: https://images.pexels.com/photos/297933/pexels-photo-297933.jpeg
    productName: Crew Neck Tee
    price: 19
    category: t-shirts
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestReadSeedFile(t *testing.T) {
	items, err := readSeedFile(writeFile(t, "items.yaml", seedYAML))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Denim Jacket", items[0].ProductName)
	assert.Equal(t, 89.99, items[0].Price)
	assert.Equal(t, "jackets", items[0].Category)
	assert.Equal(t, float64(19), items[1].Price)
	assert.Empty(t, items[1].Info)
}

func TestReadSeedFile_Errors(t *testing.T) {
	_, err := readSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = readSeedFile(writeFile(t, "bad.yaml", "items: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse")

	_, err = readSeedFile(writeFile(t, "empty.yaml", "items: []\n"))
	assert.ErrorContains(t, err, "has no items")
}

func TestSeedCommand_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "clothly.db")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", dbPath)
	t.Setenv("CLOTHES_COLLECTION", "menclothes")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("LOG_LEVEL", "error")

	seedPath := writeFile(t, "items.yaml", seedYAML)
	missingEnv := filepath.Join(t.TempDir(), "none.env")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"seed", "--env-file", missingEnv, "--file", seedPath, "--replace"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Imported 2 items into menclothes")

	db, err := repositories.OpenGORM("sqlite", dbPath)
	require.NoError(t, err)
	repo, err := repositories.NewGORMClothingRepository(db, "menclothes")
	require.NoError(t, err)
	defer repo.Close(context.Background())

	items, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCatalogEventHandler(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := catalogEventHandler(logger)

	body, err := json.Marshal(models.CatalogImported{ImportID: "imp-1", Collection: "menclothes", Count: 3})
	require.NoError(t, err)

	require.NoError(t, handler(amqp.Delivery{Type: services.CatalogImportedEvent, Body: body}))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Catalog imported", hook.LastEntry().Message)
	assert.Equal(t, 3, hook.LastEntry().Data["count"])
	assert.Equal(t, "imp-1", hook.LastEntry().Data["import_id"])

	hook.Reset()
	require.NoError(t, handler(amqp.Delivery{Type: services.CatalogImportedEvent, Body: []byte("not json")}))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)

	hook.Reset()
	require.NoError(t, handler(amqp.Delivery{Type: "catalog.other", Body: body}))
	assert.Nil(t, hook.LastEntry())
}
