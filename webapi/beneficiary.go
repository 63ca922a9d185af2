package webapi

import (
	"github.com/cdacbank/onlinebanking/pkg/config"
	"github.com/cdacbank/onlinebanking/pkg/middleware"
	authsvc "github.com/cdacbank/onlinebanking/pkg/service/auth"
	beneficiarysvc "github.com/cdacbank/onlinebanking/pkg/service/beneficiary"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BeneficiaryRoutes registers the saved-payee endpoints. All of them
// require a verified JWT and operate on the caller's own list.
func BeneficiaryRoutes(app *fiber.App, benSvc *beneficiarysvc.Service, authSvc *authsvc.Service, cfg *config.AppConfig) {
	protected := app.Group("/beneficiary", middleware.JwtProtected(cfg.Jwt))
	protected.Post("/", AddBeneficiary(benSvc, authSvc))
	protected.Get("/", ListBeneficiaries(benSvc, authSvc))
	protected.Delete("/:id", RemoveBeneficiary(benSvc, authSvc))
}

// AddBeneficiary saves a payee after the name and account number check out.
// @Summary Add a beneficiary
// @Tags beneficiary
// @Accept json
// @Produce json
// @Param request body AddBeneficiaryRequest true "Beneficiary details"
// @Success 201 {object} Response
// @Failure 404 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /beneficiary [post]
// @Security Bearer
func AddBeneficiary(benSvc *beneficiarysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		input, err := BindAndValidate[AddBeneficiaryRequest](c)
		if input == nil {
			return err
		}
		ben, err := benSvc.Add(c.UserContext(), userID, input.Name, input.AccountNumber)
		if err != nil {
			return DomainErrorJSON(c, "Add beneficiary failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Beneficiary added", ben)
	}
}

// ListBeneficiaries returns the caller's saved payees.
// @Summary List beneficiaries
// @Tags beneficiary
// @Produce json
// @Success 200 {object} Response
// @Router /beneficiary [get]
// @Security Bearer
func ListBeneficiaries(benSvc *beneficiarysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		list, err := benSvc.ListForUser(c.UserContext(), userID)
		if err != nil {
			return DomainErrorJSON(c, "Beneficiary listing failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Beneficiaries retrieved", list)
	}
}

// RemoveBeneficiary deletes one of the caller's saved payees. Removing an
// id that is not in the caller's list is a no-op.
// @Summary Remove a beneficiary
// @Tags beneficiary
// @Produce json
// @Param id path string true "Beneficiary ID"
// @Success 200 {object} Response
// @Router /beneficiary/{id} [delete]
// @Security Bearer
func RemoveBeneficiary(benSvc *beneficiarysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		beneficiaryID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid beneficiary id", err.Error())
		}
		if err := benSvc.Remove(c.UserContext(), beneficiaryID, userID); err != nil {
			return DomainErrorJSON(c, "Remove beneficiary failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Beneficiary removed", nil)
	}
}
