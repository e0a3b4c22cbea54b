// internal/commerce/normalize.go
package commerce

import (
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"github.com/webmart/admin-dashboard/internal/models"
)

// Collection coerces a product-collection payload of unknown shape into an
// ordered slice. The platform has returned a bare array, `{products: [...]}`,
// `{data: [...]}` and plain keyed objects across versions; this shim absorbs
// all of them instead of trusting the contract. Total and idempotent: any
// input yields a slice, and reapplying it to the result is a no-op.
//
// Priority: bare array, then the `products` field, then the `data` field,
// then the values of any other keyed mapping (sorted key order, so the result
// is deterministic), then empty.
func Collection(payload any) []any {
	switch v := payload.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	case map[string]any:
		if items, ok := v["products"].([]any); ok {
			return items
		}
		if items, ok := v["data"].([]any); ok {
			return items
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		values := make([]any, 0, len(v))
		for _, k := range keys {
			values = append(values, v[k])
		}
		return values
	default:
		return []any{}
	}
}

// Products normalizes a collection payload into product records. Entries that
// are not objects are dropped; a malformed payload degrades to an empty list
// rather than an error.
func Products(payload any) []models.Product {
	items := Collection(payload)
	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		if product, ok := DecodeProduct(item); ok {
			products = append(products, product)
		}
	}
	return products
}

// DecodeProduct maps one loosely-typed entry onto a product record. Numeric
// fields arrive as JSON numbers or strings depending on the platform version,
// and the identifier is `id` or `_id` depending on the backing store.
func DecodeProduct(item any) (models.Product, bool) {
	entry, ok := item.(map[string]any)
	if !ok {
		return models.Product{}, false
	}

	var product models.Product
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &product,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return models.Product{}, false
	}
	if err := decoder.Decode(entry); err != nil {
		return models.Product{}, false
	}

	if product.ID == "" {
		product.ID = cast.ToString(entry["_id"])
	}
	return product, true
}
