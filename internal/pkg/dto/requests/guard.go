package requests

// GuardDecision is sent by the SPA on every navigation. Path is the
// browser-side path being entered, not this service's own URL.
type GuardDecision struct {
	Path string `json:"path" validate:"required"`
}
