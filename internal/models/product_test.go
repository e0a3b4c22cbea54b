// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatusBands(t *testing.T) {
	assert.Equal(t, StockStatusOut, StockStatusFor(0))
	assert.Equal(t, StockStatusOut, StockStatusFor(-1))
	assert.Equal(t, StockStatusLow, StockStatusFor(1))
	assert.Equal(t, StockStatusLow, StockStatusFor(10))
	assert.Equal(t, StockStatusIn, StockStatusFor(11))
}

func TestDisplayNameFallsBack(t *testing.T) {
	assert.Equal(t, "Keyboard", Product{Name: "Keyboard"}.DisplayName())
	assert.Equal(t, "Unnamed Product", Product{}.DisplayName())
}

func TestMainImage(t *testing.T) {
	assert.Equal(t, "", Product{}.MainImage())
	assert.Equal(t, "a.jpg", Product{Images: []string{"a.jpg", "b.jpg"}}.MainImage())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("Electronics"))
	assert.False(t, IsValidCategory("electronics"))
	assert.False(t, IsValidCategory(""))
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus("shipped"))
	assert.False(t, IsValidOrderStatus("teleported"))
}
