/*
Package authz is a role based permission evaluator. It decides whether a
user, holding a set of role IDs, is authorized for an action expressed as a
dot-separated permission template. The registry is guarded by a read-write
lock, so it can be used from multiple goroutines concurrently. "Keep it
simple" is in core.

It supports role inheritance and wildcard permission segments.

It can be used in middleware.

authz is built on these terms:

		- Permission	A dot-separated capability string like "trips.view.self"; a role may hold "*" segments that match anything
		- Template	A permission string with "<name>" placeholders, filled in before matching
		- Role	A named bundle of permissions plus parent role IDs to inherit from

Usage:

First get a Registry instance:

	import "github.com/fleetgrid/authz"

	reg := authz.New(nil)
	// you can pass a logger to the constructor also:
	// reg := authz.New(authz.NewConsoleLogger())

Load your role definitions. Roles are plain records; where they come from
(database, config file, literals) is up to the host:

	reg.LoadRoles(
		&authz.Role{
			ID:          "driver",
			Label:       "Driver",
			Permissions: []string{"trips.view.self", "users.update.self.driver"},
			Assignable:  true,
			Default:     true,
		},
		&authz.Role{
			ID:       "supervisor",
			Label:    "Supervisor",
			Permissions: []string{"trips.view.*", "users.update.*.driver"},
			Inherits: []string{"driver"},
		},
	)
	if err := reg.Validate(); err != nil {
		panic(err) // cyclic role inheritance in the loaded data
	}

Now you can check grants for a single role, inherited permissions included:

	if reg.RoleHasPermission("supervisor", "trips.view.self") {
		fmt.Println("supervisors can view their own trips")
	}

Or for a user, which is granted a permission when any of its roles is:

	user := &authz.User{ID: 5, Roles: []string{"driver"}}
	if reg.UserHasPermission(user, "trips.view.self") {
		fmt.Println("user 5 can view their own trips")
	}

Matching is case-insensitive and compares dot segments pairwise; "*" on
either side matches any segment, and a shorter permission satisfies any
longer one sharing its prefix, so a coarse grant like "users.*" covers
"users.update.self.driver".

Templates

A template holds "<name>" placeholders resolved through Options before
matching. The reserved "<target>" placeholder compares Options.TargetID
against the acting user's ID and becomes "self" or "others"; Static fills a
placeholder with one value; All fans the template out into one required
permission per value, and the user must satisfy every one of them:

	ok := reg.IsAuthorized(user, "users.<action>.<target>.<role>", authz.Options{
		TargetID: authz.Target(5),
		Static:   map[string]string{"action": "update"},
		All:      map[string][]string{"role": {"driver", "supervisor"}},
	})
	// requires both "users.update.self.driver" and "users.update.self.supervisor"

Persisting and loading

The Registry is json compatible. You can dump all loaded roles:

	b, err := json.Marshal(reg)

Also you can use the builtin SaveJSON to write to any writer:

	if err := reg.SaveJSON(fw); err != nil {
		fmt.Printf("unable to save roles, err:%v\n", err)
	}

And load them back:

	if err := reg.LoadJSON(f); err != nil {
		fmt.Printf("unable to load roles, err:%v\n", err)
	}

The JSON shape is a root "roles" list:

	{
	  "roles": [
	    {
	      "id": "driver",
	      "label": "Driver",
	      "permissions": [
	        "trips.view.self"
	      ],
	      "inherits": [],
	      "assignable": true,
	      "default": true
	    }
	  ]
	}

Role inheritance

A role lists parent role IDs in "inherits" and transitively gains all of
their permissions. Parents that were never loaded grant nothing. LoadRoles
does not reject cycles; call Validate once after loading so a cyclic graph
fails fast instead of being denied check by check.
*/
package authz
