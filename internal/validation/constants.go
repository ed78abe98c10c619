package validation

// Error messages
const (
	ErrMsgReadDataFile     = "failed to read data file"
	ErrMsgLoadSchema       = "failed to load schema"
	ErrMsgParseData        = "failed to parse JSON data"
	ErrMsgReadSchemaFile   = "failed to read schema file"
	ErrMsgParseSchema      = "failed to parse schema JSON"
	ErrMsgAddSchema        = "failed to add schema resource"
	ErrMsgCompileSchema    = "failed to compile schema"
	ErrMsgSchemaNotFound   = "schema file not found"
	ErrMsgValidationFailed = "schema validation failed"
)
