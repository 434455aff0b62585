package responses

type ActivityLog struct {
	ID         string `json:"id"`
	Actor      string `json:"actor"`
	ActorEmail string `json:"actorEmail,omitempty"`
	ClinicID   string `json:"clinicId,omitempty"`
	Action     string `json:"action"`
	Path       string `json:"path,omitempty"`
	Detail     string `json:"detail,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

type ArchiveActivityLogs struct {
	ObjectName string `json:"objectName"`
	Entries    int    `json:"entries"`
}
