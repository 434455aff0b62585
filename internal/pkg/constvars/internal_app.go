package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"

	AppDefaultPage     = 1
	AppDefaultPageSize = 20
	AppMaxPageSize     = 100
)

// Redis key prefixes. Sessions and resolver snapshots share the session
// lifetime; the TTL is applied on write.
const (
	RedisKeySessionPrefix     = "session:"
	RedisKeyPermissionsPrefix = "permissions:"
)

const (
	BearerTokenPrefix = "Bearer "
)

// Clinic role identifiers as assigned by the backend. The numeric IDs are
// stable across clinics; names are display-only.
const (
	RoleIDAdmin        = 1
	RoleIDDoctor       = 2
	RoleIDNurse        = 3
	RoleIDReceptionist = 4
	RoleIDAccountant   = 5

	RoleNameAdmin        = "admin"
	RoleNameDoctor       = "doctor"
	RoleNameNurse        = "nurse"
	RoleNameReceptionist = "receptionist"
	RoleNameAccountant   = "accountant"
)

// Capability keys. One per protected area of the application; the backend
// permission records carry these exact names.
const (
	CapabilityAppointments = "access_appointments"
	CapabilityPatients     = "access_patients"
	CapabilityBilling      = "access_billing"
	CapabilityInventory    = "access_inventory"
	CapabilityActivityLogs = "access_activity_logs"
	CapabilityConsultation = "access_consultation"
	CapabilitySettings     = "access_settings"
	CapabilityProfile      = "access_profile"
	CapabilityMessages     = "access_messages"
	CapabilityTools        = "access_tools"
)

// Activity log actions.
const (
	ActivityActionLogin             = "login"
	ActivityActionLogout            = "logout"
	ActivityActionAccessDenied      = "access_denied"
	ActivityActionPermissionRefresh = "permission_refresh"

	ActivityActorAnonymous = "anonymous"
)
