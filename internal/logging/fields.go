package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldDurationMS = "duration_ms"
	FieldErrorKind  = "error_kind"
	FieldInterval   = "interval"
	FieldFailures   = "consecutive_failures"
)
