package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-client/fixtures"
	"chat-client/format"
	"chat-client/httpapi"
	"chat-client/internal"
	"chat-client/moderation"
	"chat-client/projection"
	"chat-client/repositories"
	"chat-client/search"
	"chat-client/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	loc, err := config.Location()
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Rendering core
	clock := format.SystemClock()
	formatter := format.NewFormatter(clock, loc, config.TimeLayout, log)
	grouper := projection.NewGrouper(loc, log)

	index, err := search.NewInMemoryIndex(log)
	if err != nil {
		return fmt.Errorf("search index failed: %w", err)
	}
	defer func() { _ = index.Close() }()

	maskChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	masker, err := moderation.NewMasker(config.MaskedWordList(), maskChar)
	if err != nil {
		return fmt.Errorf("masker failed: %w", err)
	}

	// 4. Repositories & Services
	var api *services.APIClient
	if config.APIBaseURL != "" {
		api = services.NewAPIClient(config.APIBaseURL, config.HTTPTimeout, log)
	} else {
		log.Info("No API base URL, running offline")
	}

	authState := repositories.NewAuthStateRepository(db, log)
	otpRepo := repositories.NewOTPRepository(db, log)
	contactRepo := repositories.NewContactRepository(db, log)

	authService := services.NewAuthService(
		api, otpRepo, authState, clock, log,
		config.OTPTTL, config.AuthTokenDuration, config.MaxOTPAttempts,
	)
	chatService := services.NewChatService(
		fixtures.NewSource(clock), grouper, formatter, clock, index, log,
	)
	contactsService := services.NewContactsService(api, contactRepo, log)
	locationsService := services.NewLocationsService(api, log)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. HTTP Server Setup
	router := httpapi.NewRouter(httpapi.Deps{
		Auth:      authService,
		Chats:     chatService,
		Contacts:  contactsService,
		Locations: locationsService,
		Masker:    masker,
		Log:       log,
		Debug:     config.Debug,
	})

	if config.Debug {
		internal.StartInspectServer(db, config.Port+1)
		log.Info("Store inspector started", "port", config.Port+1)
	}

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: router}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
