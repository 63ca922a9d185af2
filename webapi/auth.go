package webapi

import (
	"github.com/cdacbank/onlinebanking/pkg/config"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/middleware"
	authsvc "github.com/cdacbank/onlinebanking/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthRoutes registers registration, login, and password-change endpoints.
func AuthRoutes(app *fiber.App, authSvc *authsvc.Service, cfg *config.AppConfig) {
	app.Post("/auth/register", Register(authSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/change-password", middleware.JwtProtected(cfg.Jwt), ChangePassword(authSvc))
}

// Register handles user registration. Customers get a default account
// opened in the same unit of work.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} Response
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /auth/register [post]
func Register(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		resp, err := authSvc.Register(
			c.UserContext(),
			input.FullName,
			input.Email,
			input.Password,
			user.Role(input.Role),
			input.SecretKey,
		)
		if err != nil {
			return DomainErrorJSON(c, "Registration failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "User registered", resp)
	}
}

// Login authenticates a user and returns a JWT and refresh token.
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Response
// @Failure 401 {object} ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		resp, err := authSvc.Login(c.UserContext(), input.Email, input.Password)
		if err != nil {
			return DomainErrorJSON(c, "Login failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Success login", resp)
	}
}

// ChangePassword updates the authenticated user's password.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Password change details"
// @Success 200 {object} Response
// @Failure 400 {object} ProblemDetails
// @Router /auth/change-password [post]
// @Security Bearer
func ChangePassword(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		input, err := BindAndValidate[ChangePasswordRequest](c)
		if input == nil {
			return err
		}
		if err := authSvc.ChangePassword(
			c.UserContext(), userID,
			input.CurrentPassword, input.NewPassword, input.ConfirmPassword,
		); err != nil {
			return DomainErrorJSON(c, "Password change failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Password changed", nil)
	}
}

// currentUserID extracts the authenticated user's id from the verified JWT
// the middleware stored in the request context.
func currentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errMissingUserContext
	}
	return authSvc.GetCurrentUserID(token)
}

// currentRole extracts the role claim from the verified JWT.
func currentRole(c *fiber.Ctx, authSvc *authsvc.Service) user.Role {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	return authSvc.CurrentRole(token)
}
