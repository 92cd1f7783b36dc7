package services_test

import (
	"testing"

	"clothly/internal/services"
	"clothly/internal/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorefrontService_CycleCollection(t *testing.T) {
	service := services.NewStorefrontService()
	presets := service.Collections()
	require.NotEmpty(t, presets)

	next, preset, err := service.CycleCollection(0, "next")
	require.NoError(t, err)
	assert.Equal(t, 1, next)
	assert.Equal(t, presets[1], preset)

	next, _, err = service.CycleCollection(len(presets)-1, "")
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	prev, preset, err := service.CycleCollection(0, "prev")
	require.NoError(t, err)
	assert.Equal(t, len(presets)-1, prev)
	assert.Equal(t, presets[len(presets)-1], preset)

	_, _, err = service.CycleCollection(0, "up")
	assert.Error(t, err)
}

func TestStorefrontService_ActiveCategory(t *testing.T) {
	service := services.NewStorefrontService()

	assert.Equal(t, storefront.Women, service.ActiveCategory("/shop/women").Category)
	assert.Equal(t, storefront.Men, service.ActiveCategory("").Category)

	var active []string
	for _, link := range service.ShopNavLinks("/shop/couples") {
		if link.Active {
			active = append(active, link.Href)
		}
	}
	assert.Equal(t, []string{"/shop/couples"}, active)
}

func TestStorefrontService_Theme(t *testing.T) {
	assert.Equal(t, storefront.DefaultTheme(), services.NewStorefrontService().Theme())
}
