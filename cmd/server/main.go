package main

import (
	"fmt"
	"log/slog"

	infrarepo "github.com/cdacbank/onlinebanking/infra/repository"
	"github.com/cdacbank/onlinebanking/internal/database"
	"github.com/cdacbank/onlinebanking/pkg/config"
	authsvc "github.com/cdacbank/onlinebanking/pkg/service/auth"
	"github.com/cdacbank/onlinebanking/pkg/service/banking"
	beneficiarysvc "github.com/cdacbank/onlinebanking/pkg/service/beneficiary"
	contactsvc "github.com/cdacbank/onlinebanking/pkg/service/contact"
	usersvc "github.com/cdacbank/onlinebanking/pkg/service/user"
	"github.com/cdacbank/onlinebanking/webapi"
	log "github.com/charmbracelet/log"
)

// @title Online Banking API
// @version 1.0.0
// @description Money-movement API: accounts, transfers, beneficiaries
// @contact.name CDAC Bank Support
// @contact.email support@cdacbank.example
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := database.Connect(cfg.DB.Url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	deps := webapi.Deps{
		Banking:     banking.New(uow, logger),
		Beneficiary: beneficiarysvc.New(uow, logger),
		Auth:        authsvc.New(uow, cfg.Jwt, cfg.Admin, logger),
		User:        usersvc.New(uow, logger),
		Contact:     contactsvc.New(uow, logger),
		Config:      cfg,
	}

	app := webapi.NewApp(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "address", addr)
	return app.Listen(addr)
}
