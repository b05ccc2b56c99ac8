package logger

// Standard field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRunID      = "run_id"
	FieldGeneration = "generation"
	FieldQuery      = "query"
	FieldURL        = "url"
	FieldTitle      = "title"
	FieldCount      = "count"
	FieldCursor     = "cursor"
	FieldShown      = "shown"
	FieldStatus     = "status"
	FieldKind       = "kind"
	FieldError      = "error"
	FieldDurationMS = "duration_ms"
	FieldWidth      = "width"
	FieldHeight     = "height"
)
