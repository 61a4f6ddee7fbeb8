package main

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/limadaniel-ar/tienda-cuentas/internal/config"
	"github.com/limadaniel-ar/tienda-cuentas/internal/database"
	"github.com/limadaniel-ar/tienda-cuentas/internal/database/repository"
	"github.com/limadaniel-ar/tienda-cuentas/internal/logger"
	"github.com/limadaniel-ar/tienda-cuentas/internal/service"
	"github.com/limadaniel-ar/tienda-cuentas/internal/tui"
)

func main() {
	ctx := context.Background()

	// optional: connection credentials from a local .env
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// the TUI owns the terminal, so logs go to a file
	logFile, err := logger.OpenLogFile()
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()
	slogger := logger.New(logFile, "cuentas")

	connString := database.ConnString(cfg.Database)

	if err := database.RunMigrations(connString, cfg.Database.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.StatusCheck(pingCtx, pool); err != nil {
		log.Fatalf("database not ready: %v", err)
	}

	customerRepo := repository.NewCustomerRepo(slogger, pool)
	txRepo := repository.NewTransactionRepo(slogger, pool)

	increase := &service.IncreaseService{Log: slogger, Transactions: txRepo}

	p := tea.NewProgram(tui.New(ctx, cfg, slogger,
		tui.Stores{Customers: customerRepo, Transactions: txRepo},
		tui.Services{Increase: increase},
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
