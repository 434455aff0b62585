package config

type InternalConfig struct {
	App     App
	JWT     JWT
	Backend Backend
	Audit   Audit
	Archive Archive
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	LoginSessionExpiredTimeInHours int
	LoginRateLimitPerMinute        int
	LoginRateLimitBlockInMinutes   int
	SuperadminAPIKeyHash           string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

// Backend points at the opaque clinic REST API this service fronts. Both the
// auth endpoints and the permission lookup live under BaseUrl.
type Backend struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}

type Audit struct {
	QueueName string
}

type Archive struct {
	BucketName string
}
