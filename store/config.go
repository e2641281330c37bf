package store

// Config holds configuration for the Store.
type Config struct {
	// TableName is the catalog table.
	// Default: "catalog_products"
	TableName string

	// CategoryIndex is the global secondary index keyed by category.
	// Default: "category-index"
	CategoryIndex string

	// ScanPageSize is the per-request item limit used when draining a full
	// scan or query. It bounds round-trip size, not the result set.
	// Default: 100
	// Max: 1000
	ScanPageSize int32
}

// DefaultConfig returns sensible defaults for small catalogs.
func DefaultConfig() Config {
	return Config{
		TableName:     "catalog_products",
		CategoryIndex: "category-index",
		ScanPageSize:  100,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = "catalog_products"
	}
	if c.CategoryIndex == "" {
		c.CategoryIndex = "category-index"
	}
	if c.ScanPageSize < 1 {
		c.ScanPageSize = 100
	}
	if c.ScanPageSize > 1000 {
		c.ScanPageSize = 1000
	}
}
