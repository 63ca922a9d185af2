package webapi

import (
	"github.com/cdacbank/onlinebanking/pkg/config"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/middleware"
	authsvc "github.com/cdacbank/onlinebanking/pkg/service/auth"
	"github.com/cdacbank/onlinebanking/pkg/service/banking"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AccountRoutes registers the money-movement and account query endpoints.
// All of them require a verified JWT.
func AccountRoutes(app *fiber.App, bankingSvc *banking.Service, authSvc *authsvc.Service, cfg *config.AppConfig) {
	protected := app.Group("/account", middleware.JwtProtected(cfg.Jwt))
	protected.Get("/", ListAccounts(bankingSvc, authSvc))
	// Registered before the :id routes so "transactions" is not read as an id.
	protected.Get("/transactions", ListUserTransactions(bankingSvc, authSvc))
	protected.Get("/:id", GetAccount(bankingSvc, authSvc))
	protected.Get("/:id/summary", GetAccountSummary(bankingSvc, authSvc))
	protected.Get("/:id/transactions", GetTransactionHistory(bankingSvc, authSvc))
	protected.Post("/:id/deposit", Deposit(bankingSvc, authSvc))
	protected.Post("/:id/withdraw", Withdraw(bankingSvc, authSvc))
	protected.Post("/:id/transfer", Transfer(bankingSvc, authSvc))
}

// parseAccountID reads the account id path parameter.
func parseAccountID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// requireAccountAccess loads the account and enforces that the caller owns
// it. Admins may operate on any account.
func requireAccountAccess(
	c *fiber.Ctx,
	bankingSvc *banking.Service,
	authSvc *authsvc.Service,
	accountID uuid.UUID,
) error {
	userID, err := currentUserID(c, authSvc)
	if err != nil {
		return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
	}
	if currentRole(c, authSvc) == user.RoleAdmin {
		return nil
	}
	acc, err := bankingSvc.GetAccount(c.UserContext(), accountID)
	if err != nil {
		return DomainErrorJSON(c, "Account lookup failed", err)
	}
	if acc.UserID != userID {
		return ErrorResponseJSON(c, fiber.StatusForbidden, "Forbidden", "account does not belong to the current user")
	}
	return nil
}

// ListAccounts returns all accounts owned by the authenticated user.
// @Summary List own accounts
// @Tags account
// @Produce json
// @Success 200 {object} Response
// @Router /account [get]
// @Security Bearer
func ListAccounts(bankingSvc *banking.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		accounts, err := bankingSvc.ListAccountsForUser(c.UserContext(), userID)
		if err != nil {
			return DomainErrorJSON(c, "Account listing failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts retrieved", accounts)
	}
}

// ListUserTransactions returns the ledger entries touching any account the
// authenticated user owns, newest first.
// @Summary List own transactions
// @Tags account
// @Produce json
// @Success 200 {object} Response
// @Router /account/transactions [get]
// @Security Bearer
func ListUserTransactions(bankingSvc *banking.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		history, err := bankingSvc.GetUserTransactions(c.UserContext(), userID)
		if err != nil {
			return DomainErrorJSON(c, "Transaction listing failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", history)
	}
}

// GetAccount returns a single account snapshot.
// @Summary Get account
// @Tags account
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /account/{id} [get]
// @Security Bearer
func GetAccount(bankingSvc *banking.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		if err := requireAccountAccess(c, bankingSvc, authSvc, accountID); err != nil {
			return err
		}
		acc, err := bankingSvc.GetAccount(c.UserContext(), accountID)
		if err != nil {
			return DomainErrorJSON(c, "Account lookup failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account retrieved", acc)
	}
}

// GetAccountSummary returns the account snapshot with its most recent
// ledger entries.
// @Summary Get account summary
// @Tags account
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /account/{id}/summary [get]
// @Security Bearer
func GetAccountSummary(bankingSvc *banking.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		if err := requireAccountAccess(c, bankingSvc, authSvc, accountID); err != nil {
			return err
		}
		summary, err := bankingSvc.GetAccountSummary(c.UserContext(), accountID)
		if err != nil {
			return DomainErrorJSON(c, "Summary lookup failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Summary retrieved", summary)
	}
}

// GetTransactionHistory returns the account's ledger entries, newest first.
// @Summary Get transaction history
// @Tags account
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} Response
// @Failure 404 {object} ProblemDetails
// @Router /account/{id}/transactions [get]
// @Security Bearer
func GetTransactionHistory(bankingSvc *banking.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		if err := requireAccountAccess(c, bankingSvc, authSvc, accountID); err != nil {
			return err
		}
		history, err := bankingSvc.GetTransactionHistory(c.UserContext(), accountID)
		if err != nil {
			return DomainErrorJSON(c, "History lookup failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", history)
	}
}

// Deposit adds funds to an account.
// @Summary Deposit funds
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body DepositRequest true "Deposit details"
// @Success 200 {object} Response
// @Failure 400 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /account/{id}/deposit [post]
// @Security Bearer
func Deposit(bankingSvc *banking.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		if err := requireAccountAccess(c, bankingSvc, authSvc, accountID); err != nil {
			return err
		}
		input, err := BindAndValidate[DepositRequest](c)
		if input == nil {
			return err
		}
		acc, err := bankingSvc.Deposit(c.UserContext(), accountID, input.Amount, input.Description)
		if err != nil {
			return DomainErrorJSON(c, "Deposit failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", acc)
	}
}

// Withdraw removes funds from an account.
// @Summary Withdraw funds
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 200 {object} Response
// @Failure 400 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /account/{id}/withdraw [post]
// @Security Bearer
func Withdraw(bankingSvc *banking.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		if err := requireAccountAccess(c, bankingSvc, authSvc, accountID); err != nil {
			return err
		}
		input, err := BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err
		}
		acc, err := bankingSvc.Withdraw(c.UserContext(), accountID, input.Amount, input.Description)
		if err != nil {
			return DomainErrorJSON(c, "Withdrawal failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", acc)
	}
}

// Transfer moves funds from the caller's account to another account
// addressed by its number.
// @Summary Transfer funds
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Source account ID"
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} Response
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /account/{id}/transfer [post]
// @Security Bearer
func Transfer(bankingSvc *banking.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		if err := requireAccountAccess(c, bankingSvc, authSvc, accountID); err != nil {
			return err
		}
		input, err := BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		tx, err := bankingSvc.Transfer(
			c.UserContext(), accountID,
			input.ToAccountNumber, input.Amount, input.Description,
		)
		if err != nil {
			return DomainErrorJSON(c, "Transfer failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", tx)
	}
}
