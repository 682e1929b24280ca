// Package authorization models roles as a closed set and grants capabilities by
// set membership, independent of how a principal is represented.
package authorization

import "strings"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleResponsable Role = "responsable"
	RoleTechnicien  Role = "technicien"
	RoleClient      Role = "client"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleResponsable, RoleTechnicien, RoleClient:
		return true
	}
	return false
}

// ParseRole returns the role for s, case-insensitive. ok is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// AllRoles lists every role in privilege order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleResponsable, RoleTechnicien, RoleClient}
}

// Capability is an action on a resource, written "resource:action".
type Capability string

const (
	CapInterventionRead   Capability = "intervention:read"
	CapInterventionCreate Capability = "intervention:create"
	CapInterventionStatus Capability = "intervention:status"
	CapInterventionAssign Capability = "intervention:assign"
	CapHistoryWrite       Capability = "history:write"
	CapPlanningRead       Capability = "planning:read"
	CapPlanningManage     Capability = "planning:manage"
	CapPlanningGenerate   Capability = "planning:generate"
	CapEquipmentRead      Capability = "equipment:read"
	CapEquipmentManage    Capability = "equipment:manage"
	CapEquipmentDelete    Capability = "equipment:delete"
	CapTechnicianManage   Capability = "technician:manage"
	CapNotificationRead   Capability = "notification:read"
	CapNotificationSend   Capability = "notification:send"
)

// Resource and Action split a capability for policy stores keyed by (obj, act).
func (c Capability) Resource() string {
	res, _, _ := strings.Cut(string(c), ":")
	return res
}

func (c Capability) Action() string {
	_, act, _ := strings.Cut(string(c), ":")
	return act
}

// DefaultCapabilities is the role to capability grant table seeded into the policy store.
func DefaultCapabilities() map[Role][]Capability {
	readOnly := []Capability{CapInterventionRead, CapPlanningRead, CapEquipmentRead}
	return map[Role][]Capability{
		RoleAdmin: {
			CapInterventionRead, CapInterventionCreate, CapInterventionStatus, CapInterventionAssign,
			CapHistoryWrite, CapPlanningRead, CapPlanningManage, CapPlanningGenerate,
			CapEquipmentRead, CapEquipmentManage, CapEquipmentDelete, CapTechnicianManage,
			CapNotificationRead, CapNotificationSend,
		},
		RoleResponsable: {
			CapInterventionRead, CapInterventionCreate, CapInterventionStatus, CapInterventionAssign,
			CapHistoryWrite, CapPlanningRead, CapPlanningManage, CapPlanningGenerate,
			CapEquipmentRead, CapEquipmentManage, CapEquipmentDelete, CapTechnicianManage,
			CapNotificationRead, CapNotificationSend,
		},
		RoleTechnicien: append([]Capability{CapInterventionStatus, CapHistoryWrite}, readOnly...),
		RoleClient:     readOnly,
	}
}

// Authorizer answers whether a role holds a capability.
type Authorizer interface {
	Can(role Role, cap Capability) (bool, error)
}

// StaticAuthorizer checks membership in an in-memory grant table.
type StaticAuthorizer struct {
	grants map[Role]map[Capability]struct{}
}

func NewStaticAuthorizer(table map[Role][]Capability) *StaticAuthorizer {
	grants := make(map[Role]map[Capability]struct{}, len(table))
	for role, caps := range table {
		set := make(map[Capability]struct{}, len(caps))
		for _, c := range caps {
			set[c] = struct{}{}
		}
		grants[role] = set
	}
	return &StaticAuthorizer{grants: grants}
}

func (a *StaticAuthorizer) Can(role Role, cap Capability) (bool, error) {
	_, ok := a.grants[role][cap]
	return ok, nil
}

// Allowed reports whether p may exercise cap. A nil principal is never allowed.
func Allowed(a Authorizer, p Principal, cap Capability) (bool, error) {
	if p == nil || !p.Role().IsValid() {
		return false, nil
	}
	return a.Can(p.Role(), cap)
}
