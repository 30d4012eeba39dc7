package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"messagely/auth"
	"messagely/moderation"
	"messagely/repositories"
	"messagely/rest"
	"messagely/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the server lifecycle. Keeping
// the logic out of main ensures deferred cleanup (database close) executes on
// every exit path.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

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

	// 3. Auth primitives
	hashParams := auth.DefaultHashParams()
	if config.HashMemoryMb != nil {
		hashParams.Memory = uint32(*config.HashMemoryMb) * 1024
	}
	hasher := auth.NewHasher(hashParams)
	codec := auth.NewTokenCodec(config.TokenSecret, config.AuthTokenDuration)

	// 4. Moderation
	mask, err := maskRune(config.MaskCharacter)
	if err != nil {
		return err
	}
	var censoredWords []string
	if config.CensoredWords != "" {
		censoredWords = strings.Split(config.CensoredWords, ",")
	}
	moderator, err := moderation.NewModerator(censoredWords, mask)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}

	// 5. Services
	userRepository := repositories.NewUserRepository(db)
	messageRepository := repositories.NewMessageRepository(db, log)
	identity, err := services.NewIdentityService(userRepository, hasher)
	if err != nil {
		return fmt.Errorf("identity service setup failed: %w", err)
	}
	messaging := services.NewMessagingService(identity, messageRepository, moderator)
	access := services.NewAccessService(identity, messaging, codec)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. HTTP Server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:    address,
		Handler: rest.NewServer(log, access, codec).Routes(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
