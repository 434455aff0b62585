package permissions

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
)

// fallbackCapabilities maps a role ID to the capabilities granted when the
// backend permission fetch fails. Each entry must stay a subset of what the
// backend grants that role in steady state; fallback_test.go holds the
// backend truth fixture that enforces this.
var fallbackCapabilities = map[int][]string{
	constvars.RoleIDAdmin: {
		constvars.CapabilityAppointments,
		constvars.CapabilityPatients,
		constvars.CapabilityBilling,
		constvars.CapabilityInventory,
		constvars.CapabilityActivityLogs,
		constvars.CapabilityConsultation,
		constvars.CapabilitySettings,
		constvars.CapabilityProfile,
		constvars.CapabilityMessages,
		constvars.CapabilityTools,
	},
	constvars.RoleIDDoctor: {
		constvars.CapabilityAppointments,
		constvars.CapabilityPatients,
		constvars.CapabilityConsultation,
		constvars.CapabilityProfile,
		constvars.CapabilityMessages,
	},
	constvars.RoleIDNurse: {
		constvars.CapabilityAppointments,
		constvars.CapabilityPatients,
		constvars.CapabilityProfile,
		constvars.CapabilityMessages,
	},
	constvars.RoleIDReceptionist: {
		constvars.CapabilityAppointments,
		constvars.CapabilityPatients,
		constvars.CapabilityProfile,
		constvars.CapabilityMessages,
	},
	constvars.RoleIDAccountant: {
		constvars.CapabilityBilling,
		constvars.CapabilityInventory,
		constvars.CapabilityProfile,
	},
}

// FallbackCapabilities unions the fallback sets of every role the user
// holds. Unknown role IDs contribute nothing.
func FallbackCapabilities(roles []models.Role) map[string]struct{} {
	capabilities := make(map[string]struct{})
	for _, role := range roles {
		for _, capability := range fallbackCapabilities[role.ID] {
			capabilities[capability] = struct{}{}
		}
	}
	return capabilities
}
