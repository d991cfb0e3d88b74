// Command muc wires the membership core with its console collaborators and
// Badger-backed stores. Providers register themselves through the service at
// runtime; this process only owns the lifecycle.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"muc-lab/internal"
	"muc-lab/repositories"
	"muc-lab/runtime"
	"muc-lab/runtime/workers"
	"muc-lab/services"
	"muc-lab/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so every
// defer (database close included) executes before the process exits.
func run() error {
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	credentialKey, err := internal.DecodeCredentialKey(config.CredentialKey)
	if err != nil {
		return err
	}
	log := internal.NewLogger(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	registry := runtime.NewRegistry()
	statuses := repositories.NewStatusRepository(db, log)
	credentials := repositories.NewCredentialRepository(db, log, credentialKey)
	alerter := ui.NewConsoleAlerter()
	catalog := ui.NewEnglishCatalog()

	sup := workers.NewSupervisor(log, config.RestartInterval)
	pool := runtime.NewJoinPool(log, sup, registry, statuses, credentials,
		ui.NewConsolePrompt(os.Stdin), alerter, catalog,
		config.NumberOfJoinWorkers, config.JoinBufferSize)
	synchronizer := runtime.NewSynchronizer(log, registry)
	service := services.NewMUCService(log, registry, synchronizer, pool,
		statuses, credentials, alerter, catalog)
	service.AddRoomListListener(ui.NewConsoleRoomList())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool.Start(ctx)
	log.Info("Membership core started",
		"workers", config.NumberOfJoinWorkers, "buffer", config.JoinBufferSize)

	<-ctx.Done()
	pool.Stop()
	return nil
}
