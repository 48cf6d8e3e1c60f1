package authz

import "testing"

func TestRoleHasPermission(t *testing.T) {
	reg := New(nil)
	reg.LoadRoles(fleetRoles()...)

	if !reg.RoleHasPermission("driver", "trips.view.self") {
		t.Fatalf("driver should view own trips")
	}
	if reg.RoleHasPermission("driver", "trips.view.others") {
		t.Fatalf("driver should not view others' trips")
	}
	// Inherited through supervisor -> driver.
	if !reg.RoleHasPermission("supervisor", "users.update.self.driver") {
		t.Fatalf("supervisor should inherit driver grants")
	}
	// Inherited two levels down, admin -> supervisor -> driver.
	if !reg.RoleHasPermission("admin", "users.update.self.driver") {
		t.Fatalf("admin should inherit transitively")
	}
	// Wildcard segment on the held side.
	if !reg.RoleHasPermission("supervisor", "trips.view.others") {
		t.Fatalf("trips.view.* should cover trips.view.others")
	}
	if reg.RoleHasPermission("nonexistent", "trips.view.self") {
		t.Fatalf("unknown role should grant nothing")
	}
}

func TestRoleHasPermissionUnknownParent(t *testing.T) {
	reg := New(nil)
	reg.LoadRoles(&Role{ID: "orphan", Permissions: []string{"trips.view.self"}, Inherits: []string{"ghost"}})

	if !reg.RoleHasPermission("orphan", "trips.view.self") {
		t.Fatalf("own grants should work with an unloaded parent")
	}
	if reg.RoleHasPermission("orphan", "trips.view.others") {
		t.Fatalf("unloaded parent should grant nothing")
	}
}

func TestRoleHasPermissionCycleGuard(t *testing.T) {
	reg := New(nil)
	reg.LoadRoles(
		&Role{ID: "a", Inherits: []string{"b"}},
		&Role{ID: "b", Inherits: []string{"a"}},
	)
	// Must terminate and deny instead of recursing forever.
	if reg.RoleHasPermission("a", "trips.view.self") {
		t.Fatalf("cyclic graph without the permission should deny")
	}
	reg.LoadRoles(&Role{ID: "c", Permissions: []string{"trips.view.self"}, Inherits: []string{"c"}})
	if !reg.RoleHasPermission("c", "trips.view.self") {
		t.Fatalf("own grant should win before the self-cycle is walked")
	}
}

func TestUserHasPermission(t *testing.T) {
	reg := New(nil)
	reg.LoadRoles(fleetRoles()...)

	if reg.UserHasPermission(nil, "trips.view.self") {
		t.Fatalf("nil user should never be granted anything")
	}

	user := &User{ID: 5, Roles: []string{"driver"}}
	if !reg.UserHasPermission(user, "trips.view.self") {
		t.Fatalf("user with driver role should view own trips")
	}
	if reg.UserHasPermission(user, "trips.view.others") {
		t.Fatalf("user with driver role should not view others' trips")
	}

	// Any role granting is enough.
	user.Roles = []string{"nonexistent", "supervisor"}
	if !reg.UserHasPermission(user, "trips.view.others") {
		t.Fatalf("supervisor role should grant through the role list")
	}

	if reg.UserHasPermission(&User{ID: 7}, "trips.view.self") {
		t.Fatalf("user without roles should be granted nothing")
	}
}

func TestIsAuthorized(t *testing.T) {
	reg := New(nil)
	reg.LoadRoles(fleetRoles()...)

	template := "users.<action>.<target>.<role>"
	opts := Options{
		TargetID: Target(5),
		Static:   map[string]string{"action": "update"},
		All:      map[string][]string{"role": {"driver", "supervisor"}},
	}

	// The driver role only holds users.update.self.driver, one of the two
	// permissions the fan-out requires.
	driver := &User{ID: 5, Roles: []string{"driver"}}
	if reg.IsAuthorized(driver, template, opts) {
		t.Fatalf("driver misses users.update.self.supervisor, must not be authorized")
	}

	// Supervisor inherits the driver grant and holds the supervisor one.
	supervisor := &User{ID: 5, Roles: []string{"supervisor"}}
	if !reg.IsAuthorized(supervisor, template, opts) {
		t.Fatalf("supervisor should satisfy the full fan-out")
	}

	// Acting on someone else resolves <target> to others.
	opts.TargetID = Target(9)
	if reg.IsAuthorized(supervisor, template, opts) {
		t.Fatalf("supervisor holds no users.update.others grants")
	}

	admin := &User{ID: 5, Roles: []string{"admin"}}
	if !reg.IsAuthorized(admin, template, opts) {
		t.Fatalf("the admin wildcard should satisfy everything")
	}

	if reg.IsAuthorized(nil, template, opts) {
		t.Fatalf("nil user must not be authorized")
	}
}

func TestIsAuthorizedUnresolvedPlaceholder(t *testing.T) {
	reg := New(nil)
	reg.LoadRoles(fleetRoles()...)

	user := &User{ID: 5, Roles: []string{"supervisor"}}
	// No options: <target> stays literal and matches no held permission.
	if reg.IsAuthorized(user, "users.update.<target>.driver", Options{}) {
		t.Fatalf("unresolved placeholder should read as not authorized")
	}
	// Except under a wildcard broad enough to cover the literal segment.
	admin := &User{ID: 5, Roles: []string{"admin"}}
	if !reg.IsAuthorized(admin, "users.update.<target>.driver", Options{}) {
		t.Fatalf("the admin wildcard covers even literal placeholders")
	}
}
