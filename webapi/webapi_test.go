package webapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infrarepo "github.com/cdacbank/onlinebanking/infra/repository"
	"github.com/cdacbank/onlinebanking/internal/database"
	"github.com/cdacbank/onlinebanking/pkg/config"
	authsvc "github.com/cdacbank/onlinebanking/pkg/service/auth"
	"github.com/cdacbank/onlinebanking/pkg/service/banking"
	beneficiarysvc "github.com/cdacbank/onlinebanking/pkg/service/beneficiary"
	contactsvc "github.com/cdacbank/onlinebanking/pkg/service/contact"
	usersvc "github.com/cdacbank/onlinebanking/pkg/service/user"
	"github.com/cdacbank/onlinebanking/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminKey = "test-admin-key"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.ConnectSQLite(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.AppConfig{
		Jwt:       config.JwtConfig{Secret: "test-secret", Expiry: time.Hour},
		Admin:     config.AdminConfig{SecretKey: adminKey},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, Window: time.Second},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uow := infrarepo.NewUoW(db)
	return webapi.NewApp(webapi.Deps{
		Banking:     banking.New(uow, logger),
		Beneficiary: beneficiarysvc.New(uow, logger),
		Auth:        authsvc.New(uow, cfg.Jwt, cfg.Admin, logger),
		User:        usersvc.New(uow, logger),
		Contact:     contactsvc.New(uow, logger),
		Config:      cfg,
	})
}

// request runs one request against the app and decodes the JSON body.
func request(t *testing.T, app *fiber.App, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body should be JSON: %s", raw)
	}
	return resp.StatusCode, decoded
}

// registerCustomer registers a customer and returns the token and the id and
// number of the default account.
func registerCustomer(t *testing.T, app *fiber.App, email string) (token, accountID, accountNumber string) {
	t.Helper()
	status, body := request(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"full_name": "Test Customer",
		"email":     email,
		"password":  "s3cret!",
		"role":      "Customer",
	})
	require.Equal(t, http.StatusCreated, status, "registration should succeed: %v", body)
	data := body["data"].(map[string]any)
	token = data["token"].(string)

	status, body = request(t, app, http.MethodGet, "/account", token, nil)
	require.Equal(t, http.StatusOK, status)
	accounts := body["data"].([]any)
	require.Len(t, accounts, 1)
	acc := accounts[0].(map[string]any)
	return token, acc["id"].(string), acc["account_number"].(string)
}

func TestRegisterLoginDepositWithdrawTransfer(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	app := newTestApp(t)

	token, accID, _ := registerCustomer(t, app, "flow@example.com")
	_, _, peerNumber := registerCustomer(t, app, "peer@example.com")

	// Fresh login works too.
	status, body := request(t, app, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "flow@example.com",
		"password": "s3cret!",
	})
	require.Equal(http.StatusOK, status)
	assert.NotEmpty(body["data"].(map[string]any)["token"])

	status, body = request(t, app, http.MethodPost, "/account/"+accID+"/deposit", token, map[string]any{
		"amount": 500.00,
	})
	require.Equal(http.StatusOK, status, "deposit should succeed: %v", body)
	assert.InDelta(500.0, body["data"].(map[string]any)["balance"].(float64), 0.001)

	status, body = request(t, app, http.MethodPost, "/account/"+accID+"/withdraw", token, map[string]any{
		"amount": 150.00,
	})
	require.Equal(http.StatusOK, status)
	assert.InDelta(350.0, body["data"].(map[string]any)["balance"].(float64), 0.001)

	status, body = request(t, app, http.MethodPost, "/account/"+accID+"/transfer", token, map[string]any{
		"to_account_number": peerNumber,
		"amount":            100.00,
	})
	require.Equal(http.StatusOK, status, "transfer should succeed: %v", body)
	tx := body["data"].(map[string]any)
	assert.Equal("Transfer", tx["kind"])
	assert.Equal(peerNumber, tx["to_account_number"])

	status, body = request(t, app, http.MethodGet, "/account/"+accID+"/transactions", token, nil)
	require.Equal(http.StatusOK, status)
	history := body["data"].([]any)
	assert.Len(history, 3, "deposit, withdrawal, and transfer all hit the ledger")

	status, body = request(t, app, http.MethodGet, "/account/"+accID+"/summary", token, nil)
	require.Equal(http.StatusOK, status)
	summary := body["data"].(map[string]any)
	assert.InDelta(250.0, summary["account"].(map[string]any)["balance"].(float64), 0.001)
}

func TestUserWideTransactionList(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	app := newTestApp(t)

	token, accID, _ := registerCustomer(t, app, "usertx@example.com")
	peerToken, _, peerNumber := registerCustomer(t, app, "usertx-peer@example.com")

	status, _ := request(t, app, http.MethodPost, "/account/"+accID+"/deposit", token, map[string]any{
		"amount": 80.00,
	})
	require.Equal(http.StatusOK, status)
	status, _ = request(t, app, http.MethodPost, "/account/"+accID+"/transfer", token, map[string]any{
		"to_account_number": peerNumber,
		"amount":            30.00,
	})
	require.Equal(http.StatusOK, status)

	status, body := request(t, app, http.MethodGet, "/account/transactions", token, nil)
	require.Equal(http.StatusOK, status, "the user-wide view should resolve: %v", body)
	history := body["data"].([]any)
	require.Len(history, 2)
	assert.Equal("Transfer", history[0].(map[string]any)["kind"], "entries come back newest first")
	assert.Equal("Deposit", history[1].(map[string]any)["kind"])

	status, body = request(t, app, http.MethodGet, "/account/transactions", peerToken, nil)
	require.Equal(http.StatusOK, status)
	peerHistory := body["data"].([]any)
	require.Len(peerHistory, 1, "the peer sees only the incoming transfer")

	status, _ = request(t, app, http.MethodGet, "/account/transactions", "", nil)
	require.Equal(http.StatusBadRequest, status, "a missing token is a malformed request")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	app := newTestApp(t)

	status, _ := request(t, app, http.MethodGet, "/account", "", nil)
	require.Equal(http.StatusBadRequest, status, "a missing token is a malformed request")

	status, _ = request(t, app, http.MethodGet, "/account", "not-a-jwt", nil)
	require.Equal(http.StatusUnauthorized, status)
}

func TestAccountOwnershipEnforced(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	app := newTestApp(t)

	_, victimAccID, _ := registerCustomer(t, app, "victim@example.com")
	attackerToken, _, _ := registerCustomer(t, app, "attacker@example.com")

	status, _ := request(t, app, http.MethodPost, "/account/"+victimAccID+"/withdraw", attackerToken, map[string]any{
		"amount": 1.00,
	})
	require.Equal(http.StatusForbidden, status, "a user may not move another user's money")

	status, _ = request(t, app, http.MethodGet, "/account/"+victimAccID, attackerToken, nil)
	require.Equal(http.StatusForbidden, status, "a user may not read another user's account")
}

func TestWithdrawInsufficientFundsStatus(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	app := newTestApp(t)

	token, accID, _ := registerCustomer(t, app, "poor@example.com")
	status, body := request(t, app, http.MethodPost, "/account/"+accID+"/withdraw", token, map[string]any{
		"amount": 50.00,
	})
	require.Equal(http.StatusUnprocessableEntity, status)
	require.Contains(body["detail"], "insufficient funds")
}

func TestDepositValidation(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	app := newTestApp(t)

	token, accID, _ := registerCustomer(t, app, "validate@example.com")
	status, _ := request(t, app, http.MethodPost, "/account/"+accID+"/deposit", token, map[string]any{
		"amount": -5.00,
	})
	require.Equal(http.StatusBadRequest, status, "negative amounts are rejected at the boundary")
}

func TestRegisterAdminWrongSecretKey(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	app := newTestApp(t)

	status, _ := request(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"full_name":  "Root Admin",
		"email":      "admin@example.com",
		"password":   "s3cret!",
		"role":       "Admin",
		"secret_key": "wrong",
	})
	require.Equal(http.StatusUnauthorized, status)
}

func TestAdminEndpointsGatedByRole(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	app := newTestApp(t)

	customerToken, _, _ := registerCustomer(t, app, "customer@example.com")
	status, _ := request(t, app, http.MethodGet, "/admin/users", customerToken, nil)
	require.Equal(http.StatusForbidden, status)

	status, body := request(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"full_name":  "Root Admin",
		"email":      "root@example.com",
		"password":   "s3cret!",
		"role":       "Admin",
		"secret_key": adminKey,
	})
	require.Equal(http.StatusCreated, status)
	adminToken := body["data"].(map[string]any)["token"].(string)

	status, body = request(t, app, http.MethodGet, "/admin/users", adminToken, nil)
	require.Equal(http.StatusOK, status)
	users := body["data"].([]any)
	assert.Len(users, 2, "admin sees every registered user")
}

func TestAdminListsUserAccounts(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	app := newTestApp(t)

	customerToken, accID, _ := registerCustomer(t, app, "audited@example.com")

	status, body := request(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"full_name":  "Root Admin",
		"email":      "auditor@example.com",
		"password":   "s3cret!",
		"role":       "Admin",
		"secret_key": adminKey,
	})
	require.Equal(http.StatusCreated, status)
	adminToken := body["data"].(map[string]any)["token"].(string)

	status, body = request(t, app, http.MethodGet, "/admin/users", adminToken, nil)
	require.Equal(http.StatusOK, status)
	var customerID string
	for _, raw := range body["data"].([]any) {
		u := raw.(map[string]any)
		if u["email"] == "audited@example.com" {
			customerID = u["id"].(string)
		}
	}
	require.NotEmpty(customerID)

	status, body = request(t, app, http.MethodGet, "/admin/users/"+customerID+"/accounts", adminToken, nil)
	require.Equal(http.StatusOK, status, "admin can inspect a user's accounts: %v", body)
	accounts := body["data"].([]any)
	require.Len(accounts, 1)
	assert.Equal(accID, accounts[0].(map[string]any)["id"])

	status, _ = request(t, app, http.MethodGet, "/admin/users/"+customerID+"/accounts", customerToken, nil)
	require.Equal(http.StatusForbidden, status, "the route stays admin-only")
}

func TestBeneficiaryFlow(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	app := newTestApp(t)

	token, _, _ := registerCustomer(t, app, "owner@example.com")
	_, _, payeeNumber := registerCustomer(t, app, "saved-payee@example.com")

	// Wrong name: rejected.
	status, _ := request(t, app, http.MethodPost, "/beneficiary", token, map[string]any{
		"name":           "Somebody Else",
		"account_number": payeeNumber,
	})
	require.Equal(http.StatusUnprocessableEntity, status)

	status, body := request(t, app, http.MethodPost, "/beneficiary", token, map[string]any{
		"name":           "Test Customer",
		"account_number": payeeNumber,
	})
	require.Equal(http.StatusCreated, status, "adding a correctly named payee succeeds: %v", body)
	benID := body["data"].(map[string]any)["id"].(string)

	// Adding again: conflict.
	status, _ = request(t, app, http.MethodPost, "/beneficiary", token, map[string]any{
		"name":           "Test Customer",
		"account_number": payeeNumber,
	})
	require.Equal(http.StatusConflict, status)

	status, body = request(t, app, http.MethodGet, "/beneficiary", token, nil)
	require.Equal(http.StatusOK, status)
	assert.Len(body["data"].([]any), 1)

	status, _ = request(t, app, http.MethodDelete, "/beneficiary/"+benID, token, nil)
	require.Equal(http.StatusOK, status)

	status, body = request(t, app, http.MethodGet, "/beneficiary", token, nil)
	require.Equal(http.StatusOK, status)
	assert.Empty(body["data"], "the removed payee is gone")
}

func TestContactForm(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	app := newTestApp(t)

	status, _ := request(t, app, http.MethodPost, "/contact", "", map[string]any{
		"name":    "Visitor Person",
		"email":   "visitor@example.com",
		"subject": "Opening hours",
		"message": "Are you open on Saturdays?",
	})
	require.Equal(http.StatusCreated, status)

	// Contacts are an admin-only read.
	status, body := request(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"full_name":  "Root Admin",
		"email":      "contact-admin@example.com",
		"password":   "s3cret!",
		"role":       "Admin",
		"secret_key": adminKey,
	})
	require.Equal(http.StatusCreated, status)
	adminToken := body["data"].(map[string]any)["token"].(string)

	status, body = request(t, app, http.MethodGet, "/admin/contacts", adminToken, nil)
	require.Equal(http.StatusOK, status)
	require.Len(body["data"].([]any), 1)
}

func TestProblemDetailsShape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	app := newTestApp(t)

	token, _, _ := registerCustomer(t, app, "shape@example.com")
	status, body := request(t, app, http.MethodGet, fmt.Sprintf("/account/%s", "00000000-0000-0000-0000-000000000001"), token, nil)
	require.Equal(http.StatusNotFound, status)
	assert.Equal(float64(http.StatusNotFound), body["status"])
	assert.NotEmpty(body["title"])
	assert.NotEmpty(body["detail"])
	assert.NotEmpty(body["instance"])
}
