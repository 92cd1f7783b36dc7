package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every error returned from ValidateClothingItem.
var ErrValidation = errors.New("validation failed")

var imageURLPattern = regexp.MustCompile(`^https?://.+`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// ValidationError lists the fields of a document that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsImageURL reports whether s looks like an absolute http(s) image URL.
func IsImageURL(s string) bool {
	return imageURLPattern.MatchString(s)
}

// Validator returns the shared validator with the clothing rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = validate.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
			return IsImageURL(fl.Field().String())
		})
	})
	return validate
}

// ValidateClothingItem applies the collection schema to a single document.
func ValidateClothingItem(item ClothingItem) error {
	err := Validator().Struct(item)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate clothing item: %w", err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "imageurl":
			fields[e.Field()] = fmt.Sprintf("Field '%s' must be a valid URL", e.Field())
		default:
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return &ValidationError{Fields: fields}
}
