package guard

import (
	"strings"
	"testing"

	"clinicgate-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestProtectedRoutePrefixesAreDisjoint(t *testing.T) {
	routes := ProtectedRoutes()
	for i, a := range routes {
		for j, b := range routes {
			if i == j {
				continue
			}
			overlapping := a.PathPrefix == b.PathPrefix ||
				strings.HasPrefix(a.PathPrefix, b.PathPrefix+"/")
			assert.False(t, overlapping,
				"route prefix %s overlaps %s, making table order significant", a.PathPrefix, b.PathPrefix)
		}
	}
}

func TestProtectedRouteTableCoversEveryArea(t *testing.T) {
	expected := map[string]string{
		"/appointments":  constvars.CapabilityAppointments,
		"/patients":      constvars.CapabilityPatients,
		"/billing":       constvars.CapabilityBilling,
		"/inventory":     constvars.CapabilityInventory,
		"/activity-logs": constvars.CapabilityActivityLogs,
		"/consultation":  constvars.CapabilityConsultation,
		"/settings":      constvars.CapabilitySettings,
		"/profile":       constvars.CapabilityProfile,
		"/messages":      constvars.CapabilityMessages,
		"/tools":         constvars.CapabilityTools,
	}

	routes := ProtectedRoutes()
	assert.Len(t, routes, len(expected))
	for _, route := range routes {
		capability, ok := expected[route.PathPrefix]
		assert.True(t, ok, "unexpected route prefix %s", route.PathPrefix)
		assert.Equal(t, capability, route.RequiredCapability, "wrong capability for %s", route.PathPrefix)
	}
}

func TestMatchRoute(t *testing.T) {
	t.Run("Exact prefix matches", func(t *testing.T) {
		route, ok := matchRoute("/patients")
		assert.True(t, ok)
		assert.Equal(t, constvars.CapabilityPatients, route.RequiredCapability)
	})

	t.Run("Subpath matches at a slash boundary", func(t *testing.T) {
		route, ok := matchRoute("/billing/invoices/2026-08")
		assert.True(t, ok)
		assert.Equal(t, constvars.CapabilityBilling, route.RequiredCapability)
	})

	t.Run("Sibling path with a shared prefix does not match", func(t *testing.T) {
		_, ok := matchRoute("/patients-export")
		assert.False(t, ok)
	})

	t.Run("Unlisted path does not match", func(t *testing.T) {
		_, ok := matchRoute("/about")
		assert.False(t, ok)
	})

	t.Run("Root and unauthorized are not protected", func(t *testing.T) {
		_, ok := matchRoute(PathHome)
		assert.False(t, ok)
		_, ok = matchRoute(PathUnauthorized)
		assert.False(t, ok)
	})
}
