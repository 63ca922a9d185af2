package webapi

import (
	"strings"

	"github.com/cdacbank/onlinebanking/pkg/config"
	authsvc "github.com/cdacbank/onlinebanking/pkg/service/auth"
	"github.com/cdacbank/onlinebanking/pkg/service/banking"
	beneficiarysvc "github.com/cdacbank/onlinebanking/pkg/service/beneficiary"
	contactsvc "github.com/cdacbank/onlinebanking/pkg/service/contact"
	usersvc "github.com/cdacbank/onlinebanking/pkg/service/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "github.com/cdacbank/onlinebanking/docs"
)

// Deps bundles the services and configuration the HTTP layer needs.
type Deps struct {
	Banking     *banking.Service
	Beneficiary *beneficiarysvc.Service
	Auth        *authsvc.Service
	User        *usersvc.Service
	Contact     *contactsvc.Service
	Config      *config.AppConfig
}

// NewApp builds the Fiber application with all routes and middleware
// registered.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Prefer proxy headers so clients behind a load balancer are
			// throttled individually.
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	AuthRoutes(app, deps.Auth, deps.Config)
	AccountRoutes(app, deps.Banking, deps.Auth, deps.Config)
	BeneficiaryRoutes(app, deps.Beneficiary, deps.Auth, deps.Config)
	ContactRoutes(app, deps.Contact)
	AdminRoutes(app, deps.User, deps.Banking, deps.Contact, deps.Auth, deps.Config)

	return app
}
