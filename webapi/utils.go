package webapi

import (
	"errors"

	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/domain/beneficiary"
	"github.com/cdacbank/onlinebanking/pkg/domain/common"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	"github.com/cdacbank/onlinebanking/pkg/money"
	"github.com/cdacbank/onlinebanking/pkg/service/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// errMissingUserContext is returned when a protected route is reached
// without a verified token in the request context.
var errMissingUserContext = errors.New("missing user context")

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ErrorResponseJSON returns a response following RFC 9457 Problem Details.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// DomainErrorJSON maps a service error to its HTTP status and writes the
// problem-details response.
func DomainErrorJSON(c *fiber.Ctx, title string, err error) error {
	return ErrorResponseJSON(c, ErrorToStatusCode(err), title, err.Error())
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, beneficiary.ErrBeneficiaryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, account.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrAmountExceedsMaxSafeInt),
		errors.Is(err, money.ErrInvalidCurrency),
		errors.Is(err, account.ErrSameAccountTransfer),
		errors.Is(err, account.ErrCurrencyMismatch),
		errors.Is(err, money.ErrCurrencyMismatch),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrWrongPassword):
		return fiber.StatusBadRequest
	case errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, account.ErrAccountInactive),
		errors.Is(err, account.ErrAccountHasBalance),
		errors.Is(err, user.ErrUserInactive),
		errors.Is(err, beneficiary.ErrNameMismatch):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, beneficiary.ErrDuplicateBeneficiary),
		errors.Is(err, user.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidSecretKey):
		return fiber.StatusUnauthorized
	case errors.Is(err, common.ErrStorageFailure):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns the populated struct, or writes an error
// response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error()) //nolint:errcheck
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error()) //nolint:errcheck
		return nil, err
	}
	return &input, nil
}
