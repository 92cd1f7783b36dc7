package models

import "time"

// ClothingItem is a product document of a shop collection.
type ClothingItem struct {
	ID          string  `json:"_id" gorm:"primaryKey;type:varchar(36)" yaml:"id,omitempty"`
	Image       string  `json:"image" gorm:"not null" validate:"required,imageurl" yaml:"image"`
	ProductName string  `json:"productName" gorm:"not null" validate:"required" yaml:"productName"`
	Price       float64 `json:"price" yaml:"price"`
	Info        string  `json:"info" yaml:"info"`
	Category    string  `json:"category" yaml:"category"`

	// Document is the stored document when it does not have exactly the
	// typed shape. It is what gets encoded to JSON.
	Document map[string]interface{} `json:"-" gorm:"-" yaml:"-"`
}

// CatalogImported is published after an administrative import into a collection.
type CatalogImported struct {
	ImportID   string    `json:"import_id"`
	Collection string    `json:"collection"`
	Count      int       `json:"count"`
	Replaced   bool      `json:"replaced"`
	ImportedAt time.Time `json:"imported_at"`
}
