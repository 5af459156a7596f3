// pkg/crud/variants.go
package crud

import "fmt"

// NewVariantStore builds a store over one product's variants. Listing
// and creation go through the product's nested collection while updates
// and removals address the variant directly.
func NewVariantStore[T any](client *Client, productID string) *Store[T] {
	return NewStore[T](client,
		fmt.Sprintf("v1/admin/products/%s/variants", productID),
		WithCollectionKey[T]("variants"),
		WithItemRoutes[T](
			func(id string) string { return "v1/admin/variants/" + id },
			func(id string) string { return "v1/admin/variants/" + id },
		),
	)
}
