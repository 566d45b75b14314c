package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/trainsafe/internal/cli"
	"github.com/alexanderramin/trainsafe/internal/db"
	"github.com/alexanderramin/trainsafe/internal/repository"
	"github.com/alexanderramin/trainsafe/internal/safety"
	"github.com/alexanderramin/trainsafe/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := safety.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading safety config: %w", err)
	}

	// Determine DB path: env var or default ~/.trainsafe/trainsafe.db
	dbPath := os.Getenv("TRAINSAFE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".trainsafe", "trainsafe.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if os.Getenv("TRAINSAFE_LOG") == "1" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Safety: service.NewSafetyService(cfg, uow, observers...),
		Audit:  service.NewAuditService(repository.NewSQLiteEvaluationRepo(database)),
		Import: service.NewImportService(),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
