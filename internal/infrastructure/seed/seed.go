// Package seed loads reference data (users, equipment, technicians and
// maintenance plannings) from a YAML fixture file. Loading is idempotent:
// records that already exist are left untouched.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mif-gmao/gmao/internal/domain/equipment"
	"github.com/mif-gmao/gmao/internal/domain/planning"
	planningvo "github.com/mif-gmao/gmao/internal/domain/planning/valueobjects"
	"github.com/mif-gmao/gmao/internal/domain/technician"
	"github.com/mif-gmao/gmao/internal/domain/user"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/biztime"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type Fixture struct {
	Users       []UserFixture       `yaml:"users"`
	Equipments  []EquipmentFixture  `yaml:"equipments"`
	Technicians []TechnicianFixture `yaml:"technicians"`
	Plannings   []PlanningFixture   `yaml:"plannings"`
}

type UserFixture struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type EquipmentFixture struct {
	Name                    string `yaml:"name"`
	Kind                    string `yaml:"kind"`
	Location                string `yaml:"location"`
	MaintenanceIntervalDays *int   `yaml:"maintenance_interval_days"`
}

// TechnicianFixture references its user by email.
type TechnicianFixture struct {
	Email string `yaml:"email"`
	Team  string `yaml:"team"`
}

// PlanningFixture references its equipment by name. NextDueDate is YYYY-MM-DD.
type PlanningFixture struct {
	Equipment   string `yaml:"equipment"`
	Frequency   string `yaml:"frequency"`
	NextDueDate string `yaml:"next_due_date"`
	Remarks     string `yaml:"remarks"`
}

// Result counts created records per kind.
type Result struct {
	Users       int
	Equipments  int
	Technicians int
	Plannings   int
}

type Loader struct {
	users       user.Repository
	equipments  equipment.Repository
	technicians technician.Repository
	plannings   planning.Repository
	logger      logger.Interface
}

func NewLoader(
	users user.Repository,
	equipments equipment.Repository,
	technicians technician.Repository,
	plannings planning.Repository,
	log logger.Interface,
) *Loader {
	return &Loader{
		users:       users,
		equipments:  equipments,
		technicians: technicians,
		plannings:   plannings,
		logger:      log,
	}
}

func ReadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Load creates the fixture records in dependency order.
func (l *Loader) Load(ctx context.Context, f *Fixture) (*Result, error) {
	now := biztime.NowUTC()
	res := &Result{}

	for _, uf := range f.Users {
		existing, err := l.users.GetByEmail(ctx, uf.Email)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		role, ok := authorization.ParseRole(uf.Role)
		if !ok {
			return res, fmt.Errorf("user %s: unknown role %q", uf.Email, uf.Role)
		}
		u, err := user.NewUser(uf.Email, uf.FullName, role, now)
		if err != nil {
			return res, fmt.Errorf("user %s: %w", uf.Email, err)
		}
		if err := l.users.Create(ctx, u); err != nil {
			return res, fmt.Errorf("user %s: %w", uf.Email, err)
		}
		res.Users++
	}

	for _, ef := range f.Equipments {
		existing, err := l.equipments.GetByName(ctx, ef.Name)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		e, err := equipment.NewEquipment(ef.Name, ef.Kind, ef.Location, ef.MaintenanceIntervalDays, now)
		if err != nil {
			return res, fmt.Errorf("equipment %s: %w", ef.Name, err)
		}
		if err := l.equipments.Create(ctx, e); err != nil {
			return res, fmt.Errorf("equipment %s: %w", ef.Name, err)
		}
		res.Equipments++
	}

	for _, tf := range f.Technicians {
		u, err := l.users.GetByEmail(ctx, tf.Email)
		if err != nil {
			return res, err
		}
		if u == nil {
			return res, fmt.Errorf("technician %s: user not found", tf.Email)
		}
		existing, err := l.technicians.GetByUserID(ctx, u.ID())
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		t, err := technician.NewTechnician(u.ID(), tf.Team, now)
		if err != nil {
			return res, fmt.Errorf("technician %s: %w", tf.Email, err)
		}
		if err := l.technicians.Create(ctx, t); err != nil {
			return res, fmt.Errorf("technician %s: %w", tf.Email, err)
		}
		res.Technicians++
	}

	for _, pf := range f.Plannings {
		created, err := l.loadPlanning(ctx, pf, now)
		if err != nil {
			return res, fmt.Errorf("planning %s/%s: %w", pf.Equipment, pf.Frequency, err)
		}
		if created {
			res.Plannings++
		}
	}

	l.logger.Infow("seed data loaded",
		"users", res.Users,
		"equipments", res.Equipments,
		"technicians", res.Technicians,
		"plannings", res.Plannings)
	return res, nil
}

// loadPlanning skips an equipment that already has a planning at the same frequency.
func (l *Loader) loadPlanning(ctx context.Context, pf PlanningFixture, now time.Time) (bool, error) {
	e, err := l.equipments.GetByName(ctx, pf.Equipment)
	if err != nil {
		return false, err
	}
	if e == nil {
		return false, fmt.Errorf("equipment not found")
	}
	freq, err := planningvo.ParseFrequency(pf.Frequency)
	if err != nil {
		return false, err
	}
	due, err := biztime.ParseDate(pf.NextDueDate)
	if err != nil {
		return false, err
	}

	id := e.ID()
	existing, err := l.plannings.List(ctx, &id)
	if err != nil {
		return false, err
	}
	for _, p := range existing {
		if p.Frequency() == freq {
			return false, nil
		}
	}

	p, err := planning.NewPlanning(e.ID(), freq, due, pf.Remarks, now)
	if err != nil {
		return false, err
	}
	if err := l.plannings.Create(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}
