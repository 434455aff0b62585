package guard

import (
	"clinicgate-service/internal/pkg/constvars"
	"strings"
)

const (
	PathHome         = "/"
	PathLogin        = "/login"
	PathUnauthorized = "/unauthorized"
)

// Route maps a browser path prefix to the capability required to enter it.
// An empty RequiredCapability means authentication alone is enough.
type Route struct {
	PathPrefix         string
	RequiredCapability string
}

// protectedRoutes is scanned top to bottom and the first prefix match wins.
// That ordering rule is part of the contract; route_table_test.go asserts the
// prefixes are mutually disjoint so ordering can never actually matter.
var protectedRoutes = []Route{
	{PathPrefix: "/appointments", RequiredCapability: constvars.CapabilityAppointments},
	{PathPrefix: "/patients", RequiredCapability: constvars.CapabilityPatients},
	{PathPrefix: "/billing", RequiredCapability: constvars.CapabilityBilling},
	{PathPrefix: "/inventory", RequiredCapability: constvars.CapabilityInventory},
	{PathPrefix: "/activity-logs", RequiredCapability: constvars.CapabilityActivityLogs},
	{PathPrefix: "/consultation", RequiredCapability: constvars.CapabilityConsultation},
	{PathPrefix: "/settings", RequiredCapability: constvars.CapabilitySettings},
	{PathPrefix: "/profile", RequiredCapability: constvars.CapabilityProfile},
	{PathPrefix: "/messages", RequiredCapability: constvars.CapabilityMessages},
	{PathPrefix: "/tools", RequiredCapability: constvars.CapabilityTools},
}

// publicPaths are exact matches allowed for every session state, including
// one that is still loading. The login path is handled separately because an
// authenticated session is bounced off it.
var publicPaths = map[string]struct{}{
	PathHome:         {},
	PathUnauthorized: {},
}

// matchRoute returns the first protected route whose prefix matches the
// path. A prefix matches on an exact path or at a "/" boundary, so
// "/patients-export" does not match "/patients".
func matchRoute(path string) (Route, bool) {
	for _, route := range protectedRoutes {
		if path == route.PathPrefix || strings.HasPrefix(path, route.PathPrefix+"/") {
			return route, true
		}
	}
	return Route{}, false
}

// ProtectedRoutes exposes a copy of the table for tests and docs endpoints.
func ProtectedRoutes() []Route {
	routes := make([]Route, len(protectedRoutes))
	copy(routes, protectedRoutes)
	return routes
}
