package constvars

const (
	MongoCollectionActivityLogs = "activity_logs"
)
