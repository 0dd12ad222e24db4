package catalog

// SchemaName is the name the catalog schema is registered under
const SchemaName = "catalog.schema.json"

// Error message formats
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrFmtDuplicateName      = "%w: duplicate name %q"
	ErrFmtDuplicateSeed      = "%w: seed %q is used by more than one species"
	ErrFmtNonPositive        = "%w: %s of %q must be positive"
	ErrFmtNegative           = "%w: %s of %q must not be negative"
	ErrFmtHarvestBounds      = "%w: default harvests of %q exceed max harvests"
)
