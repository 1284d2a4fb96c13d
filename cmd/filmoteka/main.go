package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/iudanet/filmoteka/internal/client/api"
	"github.com/iudanet/filmoteka/internal/client/auth"
	"github.com/iudanet/filmoteka/internal/client/cli"
	"github.com/iudanet/filmoteka/internal/client/iocli"
	"github.com/iudanet/filmoteka/internal/client/movies"
	"github.com/iudanet/filmoteka/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8000", "Server URL")
	dbPath := flag.String("db", "filmoteka-client.db", "Path to local database")
	timeout := flag.Duration("timeout", 30*time.Second, "Request timeout")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	// Открываем BoltDB хранилище токенов
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Собираем слои явно: store → gateway → session → сервисы.
	// Session регистрируется обработчиком session-invalidated внутри
	// NewSession.
	tokens := auth.NewStore(boltStorage)
	apiClient := api.NewClient(*serverURL, tokens, *timeout)
	session := auth.NewSession(apiClient, tokens)
	catalog := movies.NewService(apiClient)

	app := cli.New(session, catalog, iocli.NewStdio())
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Filmoteka Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
