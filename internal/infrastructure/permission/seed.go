package permission

import (
	"fmt"

	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

// SeedCapabilities adds every grant of table that is missing from the store.
// Existing policies, including extra grants added by operators, are kept.
func (e *Enforcer) SeedCapabilities(table map[authorization.Role][]authorization.Capability) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for role, caps := range table {
		for _, c := range caps {
			ok, err := e.enforcer.AddPolicy(role.String(), c.Resource(), c.Action())
			if err != nil {
				e.logger.Errorw("failed to add permission policy",
					"error", err,
					"role", role,
					"resource", c.Resource(),
					"action", c.Action())
				return added, fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
					role, c.Resource(), c.Action(), err)
			}
			if ok {
				added++
			}
		}
	}

	e.logger.Infow("permissions seeded", "added", added)
	return added, nil
}
