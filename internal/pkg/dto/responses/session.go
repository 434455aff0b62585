package responses

// SessionCapabilities is the SPA's reactive capability signal: the resolver
// state plus the capability names currently granted. State is one of
// "pending", "ready", "degraded".
type SessionCapabilities struct {
	State        string   `json:"state"`
	Capabilities []string `json:"capabilities"`
	Roles        []Role   `json:"roles"`
}
