package permissions

import (
	"clinicgate-service/internal/app/models"
	"sort"
)

type State int

const (
	StatePending State = iota
	StateReady
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDegraded:
		return "degraded"
	default:
		return "pending"
	}
}

// Resolver is an immutable snapshot of a session's capability set. It starts
// pending and is replaced wholesale by Load/Refresh; every lookup fails
// closed until the snapshot is ready or degraded, so a capability is never
// granted while the backend fetch is still in flight.
type Resolver struct {
	state        State
	capabilities map[string]struct{}
	roles        []models.Role
}

// NewResolver returns the pending snapshot. All lookups on it return false.
func NewResolver() *Resolver {
	return &Resolver{state: StatePending}
}

// NewReadyResolver builds a ready snapshot from an explicit capability list.
func NewReadyResolver(capabilities []string, roles []models.Role) *Resolver {
	set := make(map[string]struct{}, len(capabilities))
	for _, capability := range capabilities {
		set[capability] = struct{}{}
	}
	return newResolver(StateReady, set, roles)
}

func newResolver(state State, capabilities map[string]struct{}, roles []models.Role) *Resolver {
	if capabilities == nil {
		capabilities = make(map[string]struct{})
	}
	return &Resolver{
		state:        state,
		capabilities: capabilities,
		roles:        roles,
	}
}

func (r *Resolver) State() State {
	if r == nil {
		return StatePending
	}
	return r.state
}

// Ready reports that a decision may be made on this snapshot, whether the
// capability set came from the backend or the fallback table.
func (r *Resolver) Ready() bool {
	state := r.State()
	return state == StateReady || state == StateDegraded
}

func (r *Resolver) HasPermission(capability string) bool {
	if !r.Ready() {
		return false
	}
	_, ok := r.capabilities[capability]
	return ok
}

func (r *Resolver) HasAnyPermission(capabilities ...string) bool {
	if !r.Ready() {
		return false
	}
	for _, capability := range capabilities {
		if _, ok := r.capabilities[capability]; ok {
			return true
		}
	}
	return false
}

func (r *Resolver) HasAllPermissions(capabilities ...string) bool {
	if !r.Ready() {
		return false
	}
	for _, capability := range capabilities {
		if _, ok := r.capabilities[capability]; !ok {
			return false
		}
	}
	return true
}

// HasRole checks the user's role list directly; it does not consult the
// capability set and works even while the snapshot is pending.
func (r *Resolver) HasRole(roleID int) bool {
	if r == nil {
		return false
	}
	for _, role := range r.roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}

func (r *Resolver) Capabilities() []string {
	if r == nil {
		return nil
	}
	result := make([]string, 0, len(r.capabilities))
	for capability := range r.capabilities {
		result = append(result, capability)
	}
	sort.Strings(result)
	return result
}

func (r *Resolver) Roles() []models.Role {
	if r == nil {
		return nil
	}
	return r.roles
}

// resolverSnapshot is the Redis-persisted form of a Resolver.
type resolverSnapshot struct {
	State        string        `json:"state"`
	Capabilities []string      `json:"capabilities"`
	Roles        []models.Role `json:"roles"`
}

func (r *Resolver) snapshot() resolverSnapshot {
	return resolverSnapshot{
		State:        r.State().String(),
		Capabilities: r.Capabilities(),
		Roles:        r.roles,
	}
}

func fromSnapshot(snapshot resolverSnapshot) *Resolver {
	var state State
	switch snapshot.State {
	case "ready":
		state = StateReady
	case "degraded":
		state = StateDegraded
	default:
		state = StatePending
	}

	capabilities := make(map[string]struct{}, len(snapshot.Capabilities))
	for _, capability := range snapshot.Capabilities {
		capabilities[capability] = struct{}{}
	}

	return newResolver(state, capabilities, snapshot.Roles)
}
