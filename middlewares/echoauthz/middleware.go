package echoauthz

import (
	"strconv"

	"github.com/fleetgrid/authz"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/labstack/gommon/log"
)

type (
	// EchoAuthz defines the config for the authorization middleware.
	EchoAuthz struct {
		// Skipper defines a function to skip middleware.
		Skipper middleware.Skipper
		// SessionUserKeyName is a string to find the current *authz.User
		// in the context (default is "user")
		SessionUserKeyName string
		// TargetParamName is the route param parsed into Options.TargetID
		// when the guarded route defines it (default is "id")
		TargetParamName string
		Registry        *authz.Registry
	}
)

var (
	// DefaultEchoAuthz is the default authorization middleware config.
	DefaultEchoAuthz = EchoAuthz{
		Skipper: middleware.DefaultSkipper,
	}
)

// AuthorizeFunc guards a route with a permission template.
type AuthorizeFunc = func(template string, opts authz.Options) echo.MiddlewareFunc

// Authorized returns an Authorized middleware with default config.
func Authorized(reg *authz.Registry) AuthorizeFunc {
	DefaultEchoAuthz.Registry = reg
	return AuthorizedWithConfig(DefaultEchoAuthz)
}

// AuthorizedWithConfig returns an Authorized middleware with config.
func AuthorizedWithConfig(config EchoAuthz) AuthorizeFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultEchoAuthz.Skipper
	}

	if config.Registry == nil {
		panic("authz registry is not defined")
	}

	if config.SessionUserKeyName == "" {
		config.SessionUserKeyName = "user"
	}

	if config.TargetParamName == "" {
		config.TargetParamName = "id"
	}

	return func(template string, opts authz.Options) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				if config.Skipper(c) {
					return next(c)
				}
				user, ok := c.Get(config.SessionUserKeyName).(*authz.User)
				if !ok {
					log.Errorf("no authz user under key %s", config.SessionUserKeyName)
					return echo.ErrUnauthorized
				}
				o := opts
				if o.TargetID == nil {
					if raw := c.Param(config.TargetParamName); raw != "" {
						if targetID, err := strconv.ParseInt(raw, 10, 64); err == nil {
							o.TargetID = &targetID
						} else {
							log.Errorf("route param %s=%q is not a target id", config.TargetParamName, raw)
						}
					}
				}
				if config.Registry.IsAuthorized(user, template, o) {
					return next(c)
				}
				return echo.ErrUnauthorized
			}
		}
	}
}
