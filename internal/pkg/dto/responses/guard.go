package responses

type GuardDecision struct {
	Decision           string `json:"decision"`
	RedirectTo         string `json:"redirectTo,omitempty"`
	RequiredCapability string `json:"requiredCapability,omitempty"`
}
