package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSessionIDKey  = "session_id"
	LoggingUserIDKey     = "user_id"
	LoggingClinicIDKey   = "clinic_id"
	LoggingPathKey       = "path"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingDecisionKey   = "decision"
	LoggingCapabilityKey = "capability"
	LoggingStateKey      = "state"
)
