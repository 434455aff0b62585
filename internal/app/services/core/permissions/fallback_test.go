package permissions

import (
	"testing"

	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

// backendSteadyStateGrants mirrors what the clinic backend grants each role
// when it is healthy. The fallback table may never hand out more than this,
// so a degraded session can only lose capabilities, never gain them.
var backendSteadyStateGrants = map[int][]string{
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
		constvars.CapabilitySettings,
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
		constvars.CapabilitySettings,
		constvars.CapabilityProfile,
		constvars.CapabilityMessages,
	},
	constvars.RoleIDAccountant: {
		constvars.CapabilityBilling,
		constvars.CapabilityInventory,
		constvars.CapabilityProfile,
		constvars.CapabilityMessages,
	},
}

func TestFallbackIsSubsetOfBackendGrants(t *testing.T) {
	for roleID, fallback := range fallbackCapabilities {
		granted := make(map[string]struct{})
		for _, capability := range backendSteadyStateGrants[roleID] {
			granted[capability] = struct{}{}
		}
		for _, capability := range fallback {
			_, ok := granted[capability]
			assert.True(t, ok, "fallback grants role %d capability %s beyond its steady-state set", roleID, capability)
		}
	}
}

func TestFallbackCoversEveryKnownRole(t *testing.T) {
	for _, roleID := range []int{
		constvars.RoleIDAdmin,
		constvars.RoleIDDoctor,
		constvars.RoleIDNurse,
		constvars.RoleIDReceptionist,
		constvars.RoleIDAccountant,
	} {
		assert.NotEmpty(t, fallbackCapabilities[roleID], "role %d has no fallback capabilities", roleID)
	}
}

func TestFallbackCapabilitiesUnionsRoles(t *testing.T) {
	t.Run("Single role", func(t *testing.T) {
		capabilities := FallbackCapabilities([]models.Role{
			{ID: constvars.RoleIDAccountant, Name: constvars.RoleNameAccountant},
		})
		assert.Contains(t, capabilities, constvars.CapabilityBilling)
		assert.Contains(t, capabilities, constvars.CapabilityInventory)
		assert.NotContains(t, capabilities, constvars.CapabilityPatients)
	})

	t.Run("Multiple roles union their sets", func(t *testing.T) {
		capabilities := FallbackCapabilities([]models.Role{
			{ID: constvars.RoleIDNurse, Name: constvars.RoleNameNurse},
			{ID: constvars.RoleIDAccountant, Name: constvars.RoleNameAccountant},
		})
		assert.Contains(t, capabilities, constvars.CapabilityPatients)
		assert.Contains(t, capabilities, constvars.CapabilityBilling)
	})

	t.Run("Unknown role contributes nothing", func(t *testing.T) {
		capabilities := FallbackCapabilities([]models.Role{{ID: 99, Name: "intern"}})
		assert.Empty(t, capabilities)
	})

	t.Run("No roles yields an empty set", func(t *testing.T) {
		assert.Empty(t, FallbackCapabilities(nil))
	})
}
