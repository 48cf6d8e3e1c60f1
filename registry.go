package authz

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrCyclicInheritance is returned by Validate when the loaded inheritance
// graph contains a cycle.
var ErrCyclicInheritance = errors.New("cyclic role inheritance")

// Registry holds loaded roles and answers authorization checks. It is safe
// for concurrent use: lookups take a read lock, LoadRoles a write lock.
type Registry struct {
	mu   sync.RWMutex
	list []*Role // load order, duplicates included
	byID map[string]*Role
}

type jsRegistry struct {
	Roles []*Role `json:"roles"`
}

// New returns an empty Registry
func New(logger Logger) *Registry {
	SetLogger(logger)
	return &Registry{byID: map[string]*Role{}}
}

// LoadRoles appends roles to the registry. Loading an ID twice overwrites
// the mapped entry while the earlier role stays in the ordered list; there
// is no removal. Inherits entries naming roles that were never loaded are
// tolerated and resolve to no permission. Call Validate after loading to
// reject cyclic inheritance before serving checks.
func (r *Registry) LoadRoles(roles ...*Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID == nil {
		r.byID = map[string]*Role{}
	}
	for _, role := range roles {
		if role == nil {
			continue
		}
		if _, ok := r.byID[role.ID]; ok {
			log.Debugf("role %s is already loaded, map entry overwritten", role.ID)
		}
		r.list = append(r.list, role)
		r.byID[role.ID] = role
	}
}

// GetRole finds and returns a role, nil if no role with that ID was loaded.
func (r *Registry) GetRole(roleID string) *Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.byID[roleID]
	if !ok {
		log.Errorf("role %s is not loaded", roleID)
		return nil
	}
	return role
}

// IsRoleLoaded checks if a role with the target ID was loaded.
func (r *Registry) IsRoleLoaded(roleID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[roleID]
	return ok
}

// Roles returns all loaded roles in load order, duplicates included.
func (r *Registry) Roles() []*Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*Role, len(r.list))
	copy(res, r.list)
	return res
}

// GetDisplay returns the display label of a role, false if not loaded.
func (r *Registry) GetDisplay(roleID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.byID[roleID]
	if !ok {
		log.Debugf("no display for role %s, role is not loaded", roleID)
		return "", false
	}
	return role.Label, true
}

// GetDisplays maps GetDisplay over the given IDs, order preserved. IDs that
// were never loaded yield an empty string.
func (r *Registry) GetDisplays(roleIDs ...string) []string {
	res := make([]string, len(roleIDs))
	for i, id := range roleIDs {
		res[i], _ = r.GetDisplay(id)
	}
	return res
}

// DefaultRoles returns the roles flagged as granted to new users.
func (r *Registry) DefaultRoles() []*Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := []*Role{}
	for _, role := range r.list {
		if role.Default {
			res = append(res, role)
		}
	}
	return res
}

// AssignableRoles returns the roles a host may offer for assignment.
func (r *Registry) AssignableRoles() []*Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := []*Role{}
	for _, role := range r.list {
		if role.Assignable {
			res = append(res, role)
		}
	}
	return res
}

// Validate walks the inheritance graph and returns ErrCyclicInheritance
// (wrapped with the offending role ID) if it is not acyclic. Inherits
// entries naming unloaded roles are fine. Hosts should call this once after
// loading, before serving authorization checks.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	const (
		walking = 1
		done    = 2
	)
	state := map[string]int{}
	var walk func(roleID string) error
	walk = func(roleID string) error {
		switch state[roleID] {
		case walking:
			log.Errorf("cyclic inheritance through role %s", roleID)
			return fmt.Errorf("%w: role %s", ErrCyclicInheritance, roleID)
		case done:
			return nil
		}
		state[roleID] = walking
		if role, ok := r.byID[roleID]; ok {
			for _, parentID := range role.Inherits {
				if err := walk(parentID); err != nil {
					return err
				}
			}
		}
		state[roleID] = done
		return nil
	}

	for id := range r.byID {
		if err := walk(id); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON serializes all loaded roles to JSON.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsRegistry{Roles: r.Roles()})
}

// UnmarshalJSON parses role definitions from JSON and loads them.
func (r *Registry) UnmarshalJSON(b []byte) error {
	s := jsRegistry{}
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	r.LoadRoles(s.Roles...)
	return nil
}

// LoadJSON loads role definitions from a reader.
func (r *Registry) LoadJSON(reader io.Reader) error {
	return json.NewDecoder(reader).Decode(r)
}

// SaveJSON saves all loaded roles to a writer.
func (r *Registry) SaveJSON(writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsRegistry{Roles: r.Roles()}); err != nil {
		log.Errorf("can not encode roles to json, err:%v", err)
		return err
	}
	return nil
}
