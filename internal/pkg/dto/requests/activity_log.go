package requests

type ListActivityLogs struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Actor    string `json:"actor"`
	Action   string `json:"action"`
	From     string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

type ArchiveActivityLogs struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}
