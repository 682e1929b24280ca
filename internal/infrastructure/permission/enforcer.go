// Package permission stores role capabilities as casbin policies.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// rbacModel grants (role, resource, action) triples. There is no role
// hierarchy: a role holds exactly the capabilities listed for it.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var _ authorization.Authorizer = (*Enforcer)(nil)

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Can implements authorization.Authorizer.
func (e *Enforcer) Can(role authorization.Role, capability authorization.Capability) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role.String(), capability.Resource(), capability.Action())
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "capability", capability)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) Grant(role authorization.Role, capability authorization.Capability) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role.String(), capability.Resource(), capability.Action()); err != nil {
		e.logger.Errorw("failed to add policy", "error", err, "role", role, "capability", capability)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) Revoke(role authorization.Role, capability authorization.Capability) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role.String(), capability.Resource(), capability.Action()); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err, "role", role, "capability", capability)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

// CapabilitiesOf lists what role currently holds.
func (e *Enforcer) CapabilitiesOf(role authorization.Role) ([]authorization.Capability, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	policies, err := e.enforcer.GetFilteredPolicy(0, role.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get policies for role: %w", err)
	}
	out := make([]authorization.Capability, 0, len(policies))
	for _, p := range policies {
		if len(p) < 3 {
			continue
		}
		out = append(out, authorization.Capability(p[1]+":"+p[2]))
	}
	return out, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
