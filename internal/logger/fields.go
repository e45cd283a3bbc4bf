package logger

// Standard field names for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"

	FieldPreset   = "preset"
	FieldPresetID = "preset_id"
	FieldMask     = "mask"
	FieldAlg      = "alg"
	FieldSetup    = "setup"

	FieldFile  = "file"
	FieldPath  = "path"
	FieldCount = "count"

	FieldDurationMS = "duration_ms"
)
