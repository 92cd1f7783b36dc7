package models_test

import (
	"encoding/json"
	"testing"

	"clothly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClothingItemFromDocument_TypedShape(t *testing.T) {
	item, err := models.ClothingItemFromDocument(map[string]interface{}{
		"_id":         "65a1",
		"image":       "https://x.com/a.png",
		"productName": "Oxford Shirt",
		"price":       49.99,
		"info":        "Cotton",
		"category":    "shirts",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ClothingItem{
		ID:          "65a1",
		Image:       "https://x.com/a.png",
		ProductName: "Oxford Shirt",
		Price:       49.99,
		Info:        "Cotton",
		Category:    "shirts",
	}, item)
}

func TestClothingItemFromDocument_Casts(t *testing.T) {
	tests := []struct {
		name      string
		price     interface{}
		wantPrice float64
		wantDoc   interface{}
	}{
		{"numeric string", "59.90", 59.9, 59.9},
		{"padded string", " 12 ", 12, 12.0},
		{"int32", int32(120), 120, 120.0},
		{"int64", int64(7), 7, 7.0},
		{"empty string", "", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := models.ClothingItemFromDocument(map[string]interface{}{
				"_id":         "a",
				"image":       "https://x.com/a.png",
				"productName": "Chinos",
				"price":       tt.price,
				"info":        "",
				"category":    "trousers",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, item.Price)
			require.NotNil(t, item.Document)
			assert.Equal(t, tt.wantDoc, item.Document["price"])
		})
	}
}

func TestClothingItemFromDocument_StringFields(t *testing.T) {
	item, err := models.ClothingItemFromDocument(map[string]interface{}{
		"_id":         "a",
		"image":       "https://x.com/a.png",
		"productName": 1984,
		"price":       10.0,
		"info":        true,
		"category":    "books",
	})
	require.NoError(t, err)
	assert.Equal(t, "1984", item.ProductName)
	assert.Equal(t, "true", item.Info)
	assert.Equal(t, "1984", item.Document["productName"])
}

func TestClothingItemFromDocument_UncastPrice(t *testing.T) {
	item, err := models.ClothingItemFromDocument(map[string]interface{}{
		"_id":         "a",
		"image":       "https://x.com/a.png",
		"productName": "Scarf",
		"price":       "ask in store",
	})

	var castErr *models.CastError
	require.ErrorAs(t, err, &castErr)
	assert.Equal(t, "price", castErr.Field)
	assert.Equal(t, "Scarf", item.ProductName)
	assert.Zero(t, item.Price)
	assert.Equal(t, "ask in store", item.Document["price"])
}

func TestClothingItem_JSON(t *testing.T) {
	plain := models.ClothingItem{ID: "a", Image: "https://x.com/a.png", ProductName: "Polo", Price: 35}
	data, err := json.Marshal(plain)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"a","image":"https://x.com/a.png","productName":"Polo","price":35,"info":"","category":""}`, string(data))

	var back models.ClothingItem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, plain, back)

	stored := `{"_id":"b","image":"https://x.com/b.png","productName":"Belt","__v":0}`
	require.NoError(t, json.Unmarshal([]byte(stored), &back))
	assert.Equal(t, "Belt", back.ProductName)
	require.NotNil(t, back.Document)

	data, err = json.Marshal(back)
	require.NoError(t, err)
	assert.JSONEq(t, stored, string(data))
}
