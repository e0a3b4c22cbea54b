// internal/models/product.go
package models

// Product is the dashboard's view of a platform product. The platform owns the
// record; this service only reads and mutates it through the admin API.
type Product struct {
	ID          string   `json:"id" mapstructure:"id"`
	Name        string   `json:"name" mapstructure:"name"`
	Category    string   `json:"category" mapstructure:"category"`
	Price       float64  `json:"price" mapstructure:"price"`
	Stock       int      `json:"stock" mapstructure:"stock"`
	Description string   `json:"description" mapstructure:"description"`
	Images      []string `json:"images" mapstructure:"images"`
	CreatedAt   string   `json:"created_at,omitempty" mapstructure:"created_at"`
	UpdatedAt   string   `json:"updated_at,omitempty" mapstructure:"updated_at"`
}

type StockStatus string

const (
	StockStatusOut StockStatus = "out_of_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusIn  StockStatus = "in_stock"
)

const lowStockThreshold = 10

// StockStatusFor classifies a stock count into the badge bands the dashboard shows.
func StockStatusFor(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusOut
	case stock <= lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

func (p Product) StockStatus() StockStatus {
	return StockStatusFor(p.Stock)
}

// DisplayName is the render-time fallback for products saved without a name.
func (p Product) DisplayName() string {
	if p.Name == "" {
		return "Unnamed Product"
	}
	return p.Name
}

// MainImage returns the first image, or empty when the product has none.
func (p Product) MainImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// Categories is the fixed set the platform accepts.
var Categories = []string{
	"Electronics",
	"Accessories",
	"Fashion",
	"Sports",
	"Home",
	"Books",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
