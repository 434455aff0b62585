package constvars

// Client-facing messages. Never leak backend or infrastructure detail here.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized, please login"
	ErrClientSessionExpired                = "Your session has expired, please login again"
	ErrClientInvalidUsernameOrPassword     = "Invalid email or password"
	ErrClientInsufficientPermission        = "You do not have access to this resource"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientInvalidAPIKey                 = "Invalid API key"
	ErrClientAPIKeyRequired                = "API key is required"
	ErrClientTooManyRequests               = "Too many requests, please slow down"
)

// Developer-facing messages, logged only.
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Cannot parse JSON payload"
	ErrDevCannotMarshalJSON         = "Cannot marshal value to JSON"
	ErrDevCannotParseDate           = "Cannot parse date value"
	ErrDevInvalidPaginationParams   = "Invalid pagination query parameters"
	ErrDevAuthTokenMissing          = "Authorization header is missing"
	ErrDevAuthTokenInvalidOrExpired = "Bearer token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to sign session token"
	ErrDevAuthSessionNotFound       = "Session not found in store"
	ErrDevAuthSessionExpired        = "Session has passed its expiry"
	ErrDevAuthNotAuthenticated      = "Operation requires an authenticated session"
	ErrDevAuthInvalidCredentials    = "Backend rejected the credentials"
	ErrDevServerDeadlineExceeded    = "Request deadline exceeded"
	ErrDevBackendCreateRequest      = "Failed to build backend HTTP request"
	ErrDevBackendSendRequest        = "Failed to send backend HTTP request"
	ErrDevBackendUnexpectedStatus   = "Backend returned unexpected status %d"
	ErrDevBackendMalformedResponse  = "Backend response body is malformed"
	ErrDevPermissionFetchFailed     = "Permission fetch failed, falling back to role table"
	ErrDevInsufficientPermission    = "Session lacks capability %s"
	ErrDevRedisSet                  = "Failed to set redis key"
	ErrDevRedisGet                  = "Failed to get redis key %s"
	ErrDevRedisDelete               = "Failed to delete redis key"
	ErrDevMongoInsert               = "Failed to insert mongo document"
	ErrDevMongoFind                 = "Failed to query mongo collection"
	ErrDevMinioCreateObject         = "Failed to put object into bucket %s"
	ErrDevAuditPublish              = "Failed to publish audit event"
	ErrDevInvalidAPIKey             = "Provided API key does not match"
	ErrDevAPIKeyRequired            = "API key header is empty"
)
