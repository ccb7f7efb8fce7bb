package constant

const (
	RequestParamID      = "id"
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"

	// RequestMaxMemory bounds multipart uploads held in memory.
	RequestMaxMemory = 10 << 20
)

// Listing defaults: newest first, ten per page.
const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = FieldCreatedAt
	DefaultValueSortDir = "DESC"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderAPIKey        = "X-API-Key"
	RequestHeaderContentType   = "Content-Type"

	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
)

const ContentTypeJSON = "application/json"

const (
	ResponseErrorPrepareShutdown      = "Server is shutting down"
	ResponseErrorUnhealthy            = "Server is unhealthy"
	ResponseErrorRequestLimitExceeded = "Too many requests, slow down"
)
