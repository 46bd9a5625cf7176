// =============================================================================
// Compute Sales - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - loader, csvparser, xlsxparser (producers of records)
//   - catalog (builds the price map)
//   - sales (consumes the price map)
//
// =============================================================================

package types

// =============================================================================
// RECORD TYPES
// =============================================================================

// Record is one raw row of an input document.
// JSON documents keep their decoded values (float64, string, bool, nil, ...).
// CSV and XLSX documents produce string values keyed by the header row.
// Arbitrary extra fields are tolerated and ignored by consumers.
type Record map[string]any

// PriceMap maps a product title to its unit price.
// It is built once per run and treated as immutable afterward.
type PriceMap map[string]float64

// =============================================================================
// FIELD NAMES
// =============================================================================
// Field names are case-sensitive and follow the input documents exactly.

const (
	// FieldTitle is the catalog field holding the product title.
	FieldTitle = "title"

	// FieldPrice is the catalog field holding the unit price.
	FieldPrice = "price"

	// FieldProduct is the sales field referencing a catalog title.
	FieldProduct = "Product"

	// FieldQuantity is the sales field holding the quantity sold.
	FieldQuantity = "Quantity"
)
