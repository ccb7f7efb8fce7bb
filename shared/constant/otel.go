package constant

// Tracer names. Spans are named "<scope>.<Method>".
const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelEventScopeName      = "event"
	OtelS3ScopeName         = "s3"
)

// OtelQueryAttributeKey holds the SQL text on repository spans.
const OtelQueryAttributeKey = "query"
