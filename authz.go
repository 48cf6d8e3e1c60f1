package authz

// RoleHasPermission checks if the role, or any role it transitively
// inherits from, holds a permission matching required. Role IDs that were
// never loaded grant nothing. A visited set keeps a cyclic inheritance
// graph from recursing forever; run Validate after loading to reject such
// graphs outright.
func (r *Registry) RoleHasPermission(roleID, required string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roleHasPermission(roleID, required, map[string]bool{})
}

// roleHasPermission is the depth-first OR walk over the inheritance graph.
// Caller holds at least a read lock.
func (r *Registry) roleHasPermission(roleID, required string, visited map[string]bool) bool {
	if visited[roleID] {
		log.Errorf("cyclic inheritance through role %s while checking %s", roleID, required)
		return false
	}
	visited[roleID] = true

	role, ok := r.byID[roleID]
	if !ok {
		log.Debugf("role %s is not loaded while checking %s", roleID, required)
		return false
	}
	if MatchAny(required, role.Permissions) {
		return true
	}
	for _, parentID := range role.Inherits {
		if r.roleHasPermission(parentID, required, visited) {
			return true
		}
	}
	return false
}

// UserHasPermission checks if any of the user's roles grants required. A
// nil user holds no roles and is never granted anything.
func (r *Registry) UserHasPermission(u *User, required string) bool {
	if u == nil {
		log.Debugf("nil user while checking %s", required)
		return false
	}
	for _, roleID := range u.Roles {
		if r.RoleHasPermission(roleID, required) {
			return true
		}
	}
	return false
}

// IsAuthorized expands the permission template with the given options and
// checks that the user is granted every permission in the expanded set.
// Checking stops at the first permission the user lacks.
func (r *Registry) IsAuthorized(u *User, template string, opts Options) bool {
	if u == nil {
		log.Debugf("nil user, not authorized for %s", template)
		return false
	}
	for _, required := range FillPermissionTemplate(u.ID, template, opts) {
		if !r.UserHasPermission(u, required) {
			log.Debugf("user %d misses %s for template %s", u.ID, required, template)
			return false
		}
	}
	return true
}
