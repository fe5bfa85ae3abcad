package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// Permission policy per role. Role hierarchy (grouping) mengikuti
// struktur organisasi: admin > hr > manager > employee.
var defaultPolicies = [][]string{
	{"employee", "leave", "create"},
	{"employee", "leave", "read"},
	{"employee", "leave", "cancel"},
	{"employee", "balance", "read"},
	{"manager", "leave", "approve"},
	{"manager", "leave", "reject"},
	{"hr", "balance", "rollover"},
	{"admin", "leavetype", "write"},
	{"admin", "policy", "write"},
	{"admin", "user", "write"},
}

var roleHierarchy = [][]string{
	{"admin", "hr"},
	{"hr", "manager"},
	{"manager", "employee"},
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.loadDefaultPolicies(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadDefaultPolicies() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, g := range roleHierarchy {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}

	for _, p := range defaultPolicies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(role, resource, action)
}
