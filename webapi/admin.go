package webapi

import (
	"github.com/cdacbank/onlinebanking/pkg/config"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/middleware"
	authsvc "github.com/cdacbank/onlinebanking/pkg/service/auth"
	"github.com/cdacbank/onlinebanking/pkg/service/banking"
	contactsvc "github.com/cdacbank/onlinebanking/pkg/service/contact"
	usersvc "github.com/cdacbank/onlinebanking/pkg/service/user"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminRoutes registers the admin-only endpoints. Every route requires a
// verified JWT carrying the Admin role.
func AdminRoutes(
	app *fiber.App,
	userSvc *usersvc.Service,
	bankingSvc *banking.Service,
	contactSvc *contactsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.AppConfig,
) {
	admin := app.Group("/admin", middleware.JwtProtected(cfg.Jwt), requireAdmin(authSvc))
	admin.Get("/users", ListUsers(userSvc))
	admin.Get("/users/:id", GetUser(userSvc))
	admin.Get("/users/:id/accounts", ListAccountsForUser(bankingSvc))
	admin.Delete("/users/:id", DeactivateUser(userSvc))
	admin.Get("/contacts", ListContacts(contactSvc))
}

// requireAdmin rejects callers whose token does not carry the Admin role.
func requireAdmin(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if currentRole(c, authSvc) != user.RoleAdmin {
			return ErrorResponseJSON(c, fiber.StatusForbidden, "Forbidden", "admin role required")
		}
		return c.Next()
	}
}

// ListUsers returns all users.
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} Response
// @Router /admin/users [get]
// @Security Bearer
func ListUsers(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.List(c.UserContext())
		if err != nil {
			return DomainErrorJSON(c, "User listing failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Users retrieved", users)
	}
}

// GetUser returns one user's profile.
// @Summary Get user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /admin/users/{id} [get]
// @Security Bearer
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid user id", err.Error())
		}
		u, err := userSvc.Get(c.UserContext(), userID)
		if err != nil {
			return DomainErrorJSON(c, "User lookup failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "User retrieved", u)
	}
}

// ListAccountsForUser returns every account a user owns.
// @Summary List a user's accounts
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Router /admin/users/{id}/accounts [get]
// @Security Bearer
func ListAccountsForUser(bankingSvc *banking.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid user id", err.Error())
		}
		accounts, err := bankingSvc.ListAccountsForUser(c.UserContext(), userID)
		if err != nil {
			return DomainErrorJSON(c, "Account listing failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts retrieved", accounts)
	}
}

// DeactivateUser closes a user's profile. The request is refused while any
// of the user's accounts still holds funds.
// @Summary Deactivate user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /admin/users/{id} [delete]
// @Security Bearer
func DeactivateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid user id", err.Error())
		}
		if err := userSvc.Deactivate(c.UserContext(), userID); err != nil {
			return DomainErrorJSON(c, "User deactivation failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "User deactivated", nil)
	}
}

// ListContacts returns every stored contact-form message.
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Success 200 {object} Response
// @Router /admin/contacts [get]
// @Security Bearer
func ListContacts(contactSvc *contactsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := contactSvc.List(c.UserContext())
		if err != nil {
			return DomainErrorJSON(c, "Contact listing failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Contacts retrieved", msgs)
	}
}
