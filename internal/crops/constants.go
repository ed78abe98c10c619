package crops

// SchemaName is the name the embedded crop schema is registered under
const SchemaName = "crops.schema.json"

// Error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read crops config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse crops config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrMsgSchemaRegister       = "failed to register crop schema: %w"
)

// Validation error fragments
const (
	ErrMsgConfigNil        = "config is nil"
	ErrMsgNoCropsDefined   = "no crops defined"
	ErrFmtCropAtIndexEmpty = "%w: crop at index %d has empty internal_name"
	ErrFmtCropInvalid      = "%w: crop '%s': %s"
	ErrFmtBadTint          = "%w: crop '%s' has invalid tint %q"
)

// Default harvest values applied when a definition omits them
const (
	DefaultMinHarvest = 1
	DefaultMaxHarvest = 1
)
