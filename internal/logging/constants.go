package logging

// Standardized field names for structured logging.
// Using the same keys everywhere keeps log output easy to filter.
const (
	FieldFile     = "file_path"
	FieldCategory = "category"
	FieldColumn   = "column"
	FieldCount    = "count"
	FieldRows     = "rows"
)
