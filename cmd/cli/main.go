// Teller CLI for local operation against a SQLite database. Intended for
// development and branch-office use, not for production traffic.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"syscall"

	infrarepo "github.com/cdacbank/onlinebanking/infra/repository"
	"github.com/cdacbank/onlinebanking/internal/database"
	"github.com/cdacbank/onlinebanking/pkg/config"
	"github.com/cdacbank/onlinebanking/pkg/domain/user"
	authsvc "github.com/cdacbank/onlinebanking/pkg/service/auth"
	"github.com/cdacbank/onlinebanking/pkg/service/banking"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		usage()
		return
	}

	dbPath := os.Getenv("BANK_DB")
	if dbPath == "" {
		dbPath = "bank.db"
	}
	db, err := database.ConnectSQLite(dbPath)
	if err != nil {
		color.Red("Failed to open database: %v", err)
		os.Exit(1)
	}

	logger := slog.Default()
	uow := infrarepo.NewUoW(db)
	bankingSvc := banking.New(uow, logger)
	authSvc := authsvc.New(uow,
		config.JwtConfig{Secret: "cli-local", Expiry: 0},
		config.AdminConfig{SecretKey: os.Getenv("BANK_ADMIN_SECRET_KEY")},
		logger,
	)

	ctx := context.Background()
	cmd := os.Args[1]
	switch cmd {
	case "register":
		if argsLen < 4 {
			fmt.Println("Usage: register <full_name> <email>")
			return
		}
		password, err := promptPassword()
		if err != nil {
			color.Red("Failed to read password: %v", err)
			return
		}
		resp, err := authSvc.Register(ctx, os.Args[2], os.Args[3], password, user.RoleCustomer, "")
		if err != nil {
			color.Red("Error registering: %v", err)
			return
		}
		accounts, err := bankingSvc.ListAccountsForUser(ctx, resp.User.ID)
		if err != nil {
			color.Red("Error fetching accounts: %v", err)
			return
		}
		color.Green("User registered: ID=%s", resp.User.ID)
		for _, acc := range accounts {
			color.Green("Account opened: Number=%s ID=%s", acc.Number, acc.ID)
		}
	case "deposit":
		if argsLen < 4 {
			fmt.Println("Usage: deposit <account_id> <amount>")
			return
		}
		accountID, amount, err := parseMoneyArgs(os.Args[2], os.Args[3])
		if err != nil {
			color.Red("%v", err)
			return
		}
		acc, err := bankingSvc.Deposit(ctx, accountID, amount, "Teller deposit")
		if err != nil {
			color.Red("Error depositing: %v", err)
			return
		}
		color.Green("Deposited %.2f to account %s. New balance: %.2f", amount, acc.Number, acc.Balance)
	case "withdraw":
		if argsLen < 4 {
			fmt.Println("Usage: withdraw <account_id> <amount>")
			return
		}
		accountID, amount, err := parseMoneyArgs(os.Args[2], os.Args[3])
		if err != nil {
			color.Red("%v", err)
			return
		}
		acc, err := bankingSvc.Withdraw(ctx, accountID, amount, "Teller withdrawal")
		if err != nil {
			color.Red("Error withdrawing: %v", err)
			return
		}
		color.Green("Withdrew %.2f from account %s. New balance: %.2f", amount, acc.Number, acc.Balance)
	case "transfer":
		if argsLen < 5 {
			fmt.Println("Usage: transfer <from_account_id> <to_account_number> <amount>")
			return
		}
		accountID, amount, err := parseMoneyArgs(os.Args[2], os.Args[4])
		if err != nil {
			color.Red("%v", err)
			return
		}
		tx, err := bankingSvc.Transfer(ctx, accountID, os.Args[3], amount, "Teller transfer")
		if err != nil {
			color.Red("Error transferring: %v", err)
			return
		}
		color.Green("Transferred %.2f to account %s (transaction %s)", amount, os.Args[3], tx.ID)
	case "balance":
		if argsLen < 3 {
			fmt.Println("Usage: balance <account_id>")
			return
		}
		accountID, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("Invalid account id: %v", err)
			return
		}
		acc, err := bankingSvc.GetAccount(ctx, accountID)
		if err != nil {
			color.Red("Error fetching balance: %v", err)
			return
		}
		color.Cyan("Account %s balance: %.2f %s", acc.Number, acc.Balance, acc.Currency)
	case "history":
		if argsLen < 3 {
			fmt.Println("Usage: history <account_id>")
			return
		}
		accountID, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("Invalid account id: %v", err)
			return
		}
		history, err := bankingSvc.GetTransactionHistory(ctx, accountID)
		if err != nil {
			color.Red("Error fetching history: %v", err)
			return
		}
		for _, tx := range history {
			fmt.Printf("%s  %-9s %10.2f  %s\n", tx.CreatedAt.Format("2006-01-02 15:04:05"), tx.Kind, tx.Amount, tx.Description)
		}
	default:
		color.Red("Unknown command: %s", cmd)
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  register <full_name> <email>")
	fmt.Println("  deposit <account_id> <amount>")
	fmt.Println("  withdraw <account_id> <amount>")
	fmt.Println("  transfer <from_account_id> <to_account_number> <amount>")
	fmt.Println("  balance <account_id>")
	fmt.Println("  history <account_id>")
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func parseMoneyArgs(idArg, amountArg string) (uuid.UUID, float64, error) {
	accountID, err := uuid.Parse(idArg)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("invalid account id: %w", err)
	}
	amount, err := strconv.ParseFloat(amountArg, 64)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("invalid amount: %w", err)
	}
	return accountID, amount, nil
}
