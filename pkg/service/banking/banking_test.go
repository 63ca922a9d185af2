package banking_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/cdacbank/onlinebanking/internal/fixtures"
	"github.com/cdacbank/onlinebanking/pkg/domain/account"
	"github.com/cdacbank/onlinebanking/pkg/money"
	"github.com/cdacbank/onlinebanking/pkg/repository"
	"github.com/cdacbank/onlinebanking/pkg/service/banking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*banking.Service, repository.UnitOfWork) {
	t.Helper()
	uow := fixtures.NewTestUoW(t)
	return banking.New(uow, fixtures.Logger()), uow
}

func TestDeposit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "deposit@example.com", 0)

	read, err := svc.Deposit(context.Background(), acc.ID, 250.75, "salary")
	require.NoError(err)
	assert.InDelta(250.75, read.Balance, 0.001)
	assert.NotNil(read.LastTransactionAt, "deposit should stamp the transaction time")

	history, err := svc.GetTransactionHistory(context.Background(), acc.ID)
	require.NoError(err)
	require.Len(history, 1, "exactly one ledger entry per deposit")
	assert.Equal(string(account.KindDeposit), history[0].Kind)
	assert.Equal(string(account.StatusCompleted), history[0].Status)
	assert.Equal("salary", history[0].Description)
	assert.Equal(acc.Number, history[0].ToAccountNumber)
	assert.Empty(history[0].FromAccountNumber)
}

func TestDepositDefaultDescription(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "deposit-desc@example.com", 0)

	_, err := svc.Deposit(context.Background(), acc.ID, 10, "")
	require.NoError(err)

	history, err := svc.GetTransactionHistory(context.Background(), acc.ID)
	require.NoError(err)
	require.Len(history, 1)
	assert.Equal("Deposit", history[0].Description)
}

func TestDepositUnknownAccount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, _ := newService(t)

	_, err := svc.Deposit(context.Background(), uuid.New(), 10, "")
	require.ErrorIs(err, account.ErrAccountNotFound)
}

func TestDepositInvalidAmount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "deposit-bad@example.com", 0)

	for _, amount := range []float64{0, -5, 10.005} {
		_, err := svc.Deposit(context.Background(), acc.ID, amount, "")
		require.ErrorIs(err, account.ErrInvalidAmount, "amount %v should be rejected", amount)
	}

	history, err := svc.GetTransactionHistory(context.Background(), acc.ID)
	require.NoError(err)
	require.Empty(history, "rejected deposits must not reach the ledger")
}

func TestDepositInactiveAccount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "deposit-inactive@example.com", 0)

	deactivate(t, uow, acc)
	_, err := svc.Deposit(context.Background(), acc.ID, 10, "")
	require.ErrorIs(err, account.ErrAccountInactive)
}

func TestDepositBalanceOverflowRejected(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "deposit-overflow@example.com", math.MaxInt64-50)

	_, err := svc.Deposit(context.Background(), acc.ID, 1, "")
	require.ErrorIs(err, money.ErrAmountExceedsMaxSafeInt, "a deposit must never wrap the balance")

	history, err := svc.GetTransactionHistory(context.Background(), acc.ID)
	require.NoError(err)
	require.Empty(history, "a rejected deposit leaves no ledger entry")
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "withdraw@example.com", 10000)

	read, err := svc.Withdraw(context.Background(), acc.ID, 25.25, "groceries")
	require.NoError(err)
	assert.InDelta(74.75, read.Balance, 0.001)

	history, err := svc.GetTransactionHistory(context.Background(), acc.ID)
	require.NoError(err)
	require.Len(history, 1)
	assert.Equal(string(account.KindWithdraw), history[0].Kind)
	assert.Equal(acc.Number, history[0].FromAccountNumber)
	assert.Empty(history[0].ToAccountNumber)
}

func TestWithdrawExactBalance(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "withdraw-exact@example.com", 10000)

	read, err := svc.Withdraw(context.Background(), acc.ID, 100, "")
	require.NoError(err)
	assert.InDelta(0, read.Balance, 0.001, "withdrawing the full balance leaves zero")
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "withdraw-poor@example.com", 10000)

	_, err := svc.Withdraw(context.Background(), acc.ID, 100.01, "")
	require.ErrorIs(err, account.ErrInsufficientFunds)

	read, err := svc.GetAccount(context.Background(), acc.ID)
	require.NoError(err)
	assert.InDelta(100, read.Balance, 0.001, "failed withdrawal must leave the balance untouched")

	history, err := svc.GetTransactionHistory(context.Background(), acc.ID)
	require.NoError(err)
	assert.Empty(history, "failed withdrawal must not reach the ledger")
}

func TestTransfer(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, src := fixtures.SeedCustomer(t, uow, "transfer-src@example.com", 50000)
	_, dst := fixtures.SeedCustomer(t, uow, "transfer-dst@example.com", 10000)

	tx, err := svc.Transfer(context.Background(), src.ID, dst.Number, 150, "rent")
	require.NoError(err)
	assert.Equal(string(account.KindTransfer), tx.Kind)
	assert.Equal(src.Number, tx.FromAccountNumber)
	assert.Equal(dst.Number, tx.ToAccountNumber)
	assert.InDelta(150, tx.Amount, 0.001)

	srcRead, err := svc.GetAccount(context.Background(), src.ID)
	require.NoError(err)
	dstRead, err := svc.GetAccount(context.Background(), dst.ID)
	require.NoError(err)
	assert.InDelta(350, srcRead.Balance, 0.001)
	assert.InDelta(250, dstRead.Balance, 0.001)
	assert.InDelta(600, srcRead.Balance+dstRead.Balance, 0.001,
		"a transfer conserves the total across both accounts")

	// One entry, visible from both sides.
	srcHistory, err := svc.GetTransactionHistory(context.Background(), src.ID)
	require.NoError(err)
	dstHistory, err := svc.GetTransactionHistory(context.Background(), dst.ID)
	require.NoError(err)
	require.Len(srcHistory, 1)
	require.Len(dstHistory, 1)
	assert.Equal(srcHistory[0].ID, dstHistory[0].ID, "both sides see the same ledger entry")
}

func TestTransferThereAndBackRestoresBalances(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, a := fixtures.SeedCustomer(t, uow, "roundtrip-a@example.com", 20000)
	_, b := fixtures.SeedCustomer(t, uow, "roundtrip-b@example.com", 10000)

	_, err := svc.Transfer(context.Background(), a.ID, b.Number, 50, "there")
	require.NoError(err)
	_, err = svc.Transfer(context.Background(), b.ID, a.Number, 50, "back")
	require.NoError(err)

	aRead, err := svc.GetAccount(context.Background(), a.ID)
	require.NoError(err)
	bRead, err := svc.GetAccount(context.Background(), b.ID)
	require.NoError(err)
	assert.InDelta(200, aRead.Balance, 0.001, "the return transfer restores the first balance")
	assert.InDelta(100, bRead.Balance, 0.001, "the return transfer restores the second balance")

	history, err := svc.GetTransactionHistory(context.Background(), a.ID)
	require.NoError(err)
	require.Len(history, 2, "exactly one ledger entry per transfer")
	assert.NotEqual(history[0].ID, history[1].ID)
	assert.Equal(string(account.KindTransfer), history[0].Kind)
	assert.Equal(string(account.KindTransfer), history[1].Kind)
}

func TestTransferInsufficientFunds(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, src := fixtures.SeedCustomer(t, uow, "transfer-poor@example.com", 100)
	_, dst := fixtures.SeedCustomer(t, uow, "transfer-rich@example.com", 0)

	_, err := svc.Transfer(context.Background(), src.ID, dst.Number, 2, "")
	require.ErrorIs(err, account.ErrInsufficientFunds)

	srcRead, err := svc.GetAccount(context.Background(), src.ID)
	require.NoError(err)
	dstRead, err := svc.GetAccount(context.Background(), dst.ID)
	require.NoError(err)
	assert.InDelta(1, srcRead.Balance, 0.001, "failed transfer must not debit the source")
	assert.InDelta(0, dstRead.Balance, 0.001, "failed transfer must not credit the destination")
}

func TestTransferInsufficientFundsBeforeMissingDestination(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, uow := newService(t)
	_, src := fixtures.SeedCustomer(t, uow, "transfer-order@example.com", 100)

	// Both problems present: the source's funds are checked first.
	_, err := svc.Transfer(context.Background(), src.ID, "0000000000", 2, "")
	require.ErrorIs(err, account.ErrInsufficientFunds)
}

func TestTransferUnknownDestination(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, uow := newService(t)
	_, src := fixtures.SeedCustomer(t, uow, "transfer-nodst@example.com", 10000)

	_, err := svc.Transfer(context.Background(), src.ID, "0000000000", 1, "")
	require.ErrorIs(err, account.ErrAccountNotFound)
}

func TestTransferUnknownSource(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, uow := newService(t)
	_, dst := fixtures.SeedCustomer(t, uow, "transfer-nosrc@example.com", 0)

	_, err := svc.Transfer(context.Background(), uuid.New(), dst.Number, 1, "")
	require.ErrorIs(err, account.ErrAccountNotFound)
}

func TestTransferInactiveDestination(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, uow := newService(t)
	_, src := fixtures.SeedCustomer(t, uow, "transfer-srcok@example.com", 10000)
	_, dst := fixtures.SeedCustomer(t, uow, "transfer-dstoff@example.com", 0)

	deactivate(t, uow, dst)
	_, err := svc.Transfer(context.Background(), src.ID, dst.Number, 1, "")
	require.ErrorIs(err, account.ErrAccountInactive)
}

func TestTransferSameAccount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, uow := newService(t)
	_, src := fixtures.SeedCustomer(t, uow, "transfer-self@example.com", 10000)

	_, err := svc.Transfer(context.Background(), src.ID, src.Number, 1, "")
	require.ErrorIs(err, account.ErrSameAccountTransfer)
}

func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	// 10 units of balance, 20 withdrawal attempts of 1 unit each.
	_, acc := fixtures.SeedCustomer(t, uow, "concurrent@example.com", 1000)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Withdraw(context.Background(), acc.ID, 1, "")
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(err, account.ErrInsufficientFunds,
					"the only acceptable failure is running out of funds")
			}
		}()
	}
	wg.Wait()

	assert.Equal(10, succeeded, "exactly the covered withdrawals may succeed")

	read, err := svc.GetAccount(context.Background(), acc.ID)
	require.NoError(err)
	assert.InDelta(0, read.Balance, 0.001)
	assert.GreaterOrEqual(read.Balance, 0.0, "the balance can never go negative")

	history, err := svc.GetTransactionHistory(context.Background(), acc.ID)
	require.NoError(err)
	assert.Len(history, 10, "one ledger entry per successful withdrawal")
}

func TestConcurrentTransfersConserveTotal(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, a := fixtures.SeedCustomer(t, uow, "conserve-a@example.com", 10000)
	_, b := fixtures.SeedCustomer(t, uow, "conserve-b@example.com", 10000)

	// Opposite directions between the same pair, concurrently.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(context.Background(), a.ID, b.Number, 1, "")
			assert.NoError(err)
		}()
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(context.Background(), b.ID, a.Number, 1, "")
			assert.NoError(err)
		}()
	}
	wg.Wait()

	aRead, err := svc.GetAccount(context.Background(), a.ID)
	require.NoError(err)
	bRead, err := svc.GetAccount(context.Background(), b.ID)
	require.NoError(err)
	assert.InDelta(200, aRead.Balance+bRead.Balance, 0.001,
		"transfers move money, they never create or destroy it")
}

func TestGetAccountSummary(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "summary@example.com", 0)

	for i := 1; i <= 7; i++ {
		_, err := svc.Deposit(context.Background(), acc.ID, float64(i), "")
		require.NoError(err)
	}

	summary, err := svc.GetAccountSummary(context.Background(), acc.ID)
	require.NoError(err)
	assert.Equal(acc.ID, summary.Account.ID)
	assert.InDelta(28, summary.Account.Balance, 0.001)
	require.Len(summary.RecentTransactions, 5, "the summary carries the five most recent entries")
	assert.InDelta(7, summary.RecentTransactions[0].Amount, 0.001, "newest entry first")
}

func TestGetTransactionHistoryNewestFirst(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	_, acc := fixtures.SeedCustomer(t, uow, "history@example.com", 0)

	for i := 1; i <= 3; i++ {
		_, err := svc.Deposit(context.Background(), acc.ID, float64(i), "")
		require.NoError(err)
	}

	history, err := svc.GetTransactionHistory(context.Background(), acc.ID)
	require.NoError(err)
	require.Len(history, 3)
	assert.InDelta(3, history[0].Amount, 0.001)
	assert.InDelta(1, history[2].Amount, 0.001)
}

func TestGetUserTransactions(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	owner, acc := fixtures.SeedCustomer(t, uow, "usertx@example.com", 0)
	other, dst := fixtures.SeedCustomer(t, uow, "usertx-other@example.com", 0)

	_, err := svc.Deposit(context.Background(), acc.ID, 100, "")
	require.NoError(err)
	_, err = svc.Transfer(context.Background(), acc.ID, dst.Number, 40, "")
	require.NoError(err)

	history, err := svc.GetUserTransactions(context.Background(), owner.ID)
	require.NoError(err)
	require.Len(history, 2, "every entry touching the owner's accounts is listed")
	assert.Equal(string(account.KindTransfer), history[0].Kind, "entries come back newest first")
	assert.Equal(string(account.KindDeposit), history[1].Kind)

	otherHistory, err := svc.GetUserTransactions(context.Background(), other.ID)
	require.NoError(err)
	require.Len(otherHistory, 1, "the receiving side sees only the transfer")
	assert.Equal(history[0].ID, otherHistory[0].ID)

	empty, err := svc.GetUserTransactions(context.Background(), uuid.New())
	require.NoError(err)
	assert.Empty(empty, "a user with no accounts has no transactions")
}

func TestGetTransactionHistoryUnknownAccount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	svc, _ := newService(t)

	_, err := svc.GetTransactionHistory(context.Background(), uuid.New())
	require.ErrorIs(err, account.ErrAccountNotFound)
}

func TestListAccountsForUser(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	svc, uow := newService(t)
	owner, acc := fixtures.SeedCustomer(t, uow, "list@example.com", 500)
	fixtures.SeedCustomer(t, uow, "list-other@example.com", 900)

	accounts, err := svc.ListAccountsForUser(context.Background(), owner.ID)
	require.NoError(err)
	require.Len(accounts, 1, "only the owner's accounts are listed")
	assert.Equal(acc.ID, accounts[0].ID)
}

// deactivate flips the account off through the repository stack.
func deactivate(t *testing.T, uow repository.UnitOfWork, acc *account.Account) {
	t.Helper()
	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		stored, err := uow.AccountRepository().Get(acc.ID)
		if err != nil {
			return err
		}
		stored.Deactivate()
		return uow.AccountRepository().Update(stored)
	})
	require.NoError(t, err)
}
