package main

import (
	"net/http"

	"github.com/fleetgrid/authz"
	"github.com/fleetgrid/authz/middlewares/echoauthz"

	"github.com/labstack/echo"
)

func tripHandle(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "trip " + c.Param("id"),
	})
}

func userHandle(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "user " + c.Param("id") + " updated",
	})
}

// Session middleware is a simple session settler, instead use with your auth middleware
func Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set("user", &authz.User{ID: 5, Roles: []string{"supervisor"}})
		return next(c)
	}
}

func main() {
	e := echo.New()

	// Debug mode
	e.Debug = true

	//-------------------
	// Custom middleware
	//-------------------
	e.Use(Session)

	// Init the registry and load role definitions
	reg := authz.New(authz.NewConsoleLogger())
	reg.LoadRoles(
		&authz.Role{
			ID:          "driver",
			Label:       "Driver",
			Permissions: []string{"trips.view.self", "users.update.self.driver"},
			Assignable:  true,
			Default:     true,
		},
		&authz.Role{
			ID:          "supervisor",
			Label:       "Supervisor",
			Permissions: []string{"trips.view.*", "users.update.*.driver"},
			Inherits:    []string{"driver"},
			Assignable:  true,
		},
	)
	if err := reg.Validate(); err != nil {
		e.Logger.Fatal(err)
	}

	// Middleware function shorthand
	authorized := echoauthz.Authorized(reg)

	// Routes and their permission templates; <target> resolves from the
	// :id route param against the session user
	e.GET("/trips/:id", tripHandle, authorized("trips.view.<target>", authz.Options{}))
	e.PUT("/users/:id", userHandle, authorized("users.<action>.<target>.<role>", authz.Options{
		Static: map[string]string{"action": "update"},
		All:    map[string][]string{"role": {"driver"}},
	}))
	// default route
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, World!")
	})

	// Start server
	e.Logger.Fatal(e.Start(":1323"))
}
