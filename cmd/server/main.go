package main

import (
	"fmt"
	"log/slog"

	infradb "github.com/bankinc/cardledger/infra"
	infrarepo "github.com/bankinc/cardledger/infra/repository"
	"github.com/bankinc/cardledger/pkg/config"
	"github.com/bankinc/cardledger/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infradb.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infrarepo.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	deps := config.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
		Config: cfg,
	}

	app := webapi.NewApp(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
