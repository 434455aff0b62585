package constvars

const (
	LoginSuccessMessage          = "Successfully logged in"
	LogoutSuccessMessage         = "Successfully logged out"
	UserProfileRetrievedMessage  = "Successfully retrieved user profile"
	CapabilitiesRetrievedMessage = "Successfully retrieved session capabilities"
	PermissionsRefreshedMessage  = "Successfully refreshed permissions"
	GuardDecisionMessage         = "Successfully evaluated navigation"
	ActivityLogsRetrievedMessage = "Successfully retrieved activity logs"
	ActivityLogsArchivedMessage  = "Successfully archived activity logs"
)
