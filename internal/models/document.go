package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// itemFields are the keys of a document with exactly the ClothingItem shape.
var itemFields = [...]string{"_id", "image", "productName", "price", "info", "category"}

// CastError reports a document field whose value could not be cast to the
// item schema. The raw value is kept in the document.
type CastError struct {
	Field string
	Value interface{}
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot cast %s value %v (%T)", e.Field, e.Value, e.Value)
}

// ClothingItemFromDocument builds an item from a stored document whose
// values are already plain Go values (strings, numbers, maps, slices).
//
// Numeric strings in price become numbers, an empty price becomes null and
// scalars in the string fields become strings. Missing fields stay missing
// and unknown fields are kept. Unless the cast document has exactly the typed
// shape it is attached to the item as Document. A *CastError is returned,
// alongside the usable item, for values left uncast.
func ClothingItemFromDocument(doc map[string]interface{}) (ClothingItem, error) {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	exact := len(doc) == len(itemFields)
	var castErr error
	str := func(key string) string {
		v, ok := out[key]
		if !ok {
			exact = false
			return ""
		}
		switch s := v.(type) {
		case string:
			return s
		case nil:
			exact = false
			return ""
		case bool, int, int32, int64, float32, float64:
			exact = false
			cast := castString(s)
			out[key] = cast
			return cast
		default:
			exact = false
			return ""
		}
	}

	item := ClothingItem{
		ID:          str("_id"),
		Image:       str("image"),
		ProductName: str("productName"),
		Info:        str("info"),
		Category:    str("category"),
	}

	switch v := out["price"].(type) {
	case float64:
		item.Price = v
	case nil:
		exact = false
	default:
		exact = false
		price, ok, err := castPrice(v)
		switch {
		case err != nil:
			castErr = &CastError{Field: "price", Value: v}
		case ok:
			item.Price = price
			out["price"] = price
		default:
			out["price"] = nil
		}
	}

	if !exact {
		item.Document = out
	}
	return item, castErr
}

func castString(v interface{}) string {
	switch s := v.(type) {
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	default:
		return fmt.Sprint(s)
	}
}

// castPrice reports ok=false for a value that casts to null.
func castPrice(v interface{}) (float64, bool, error) {
	switch p := v.(type) {
	case int:
		return float64(p), true, nil
	case int32:
		return float64(p), true, nil
	case int64:
		return float64(p), true, nil
	case float32:
		return float64(p), true, nil
	case json.Number:
		f, err := p.Float64()
		return f, err == nil, err
	case string:
		s := strings.TrimSpace(p)
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil, err
	default:
		return 0, false, fmt.Errorf("not a number")
	}
}

type plainItem ClothingItem

// MarshalJSON encodes the stored document when the item carries one.
func (i ClothingItem) MarshalJSON() ([]byte, error) {
	if i.Document != nil {
		return json.Marshal(i.Document)
	}
	return json.Marshal(plainItem(i))
}

// UnmarshalJSON accepts any object and casts it like a stored document.
func (i *ClothingItem) UnmarshalJSON(data []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	item, _ := ClothingItemFromDocument(doc)
	*i = item
	return nil
}
