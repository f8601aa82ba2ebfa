package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/cardledger/internal/api"
	"github.com/erazemk/cardledger/internal/config"
	"github.com/erazemk/cardledger/internal/db"
	"github.com/erazemk/cardledger/internal/masterdata"
	"github.com/erazemk/cardledger/internal/sales"
	"github.com/erazemk/cardledger/internal/store"
	"github.com/erazemk/cardledger/internal/web"
)

func main() {
	cfg := config.Load()

	fs := flag.NewFlagSet("cardledger", flag.ContinueOnError)
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "")
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "")
	fs.StringVar(&cfg.MasterPath, "master", cfg.MasterPath, "")
	fs.StringVar(&cfg.MasterPath, "m", cfg.MasterPath, "")

	var verbose bool
	fs.BoolVar(&verbose, "verbose", false, "")
	fs.BoolVar(&verbose, "v", false, "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: cardledger [flags]

Flags:
  -d, -db <path>          SQLite database path (env CARDLEDGER_DB, default: cardledger.sqlite3)
  -a, -addr <host:port>   listen address (env CARDLEDGER_ADDR, default: :8080)
  -l, -log <path>         log file path (env CARDLEDGER_LOG, default: stdout/stderr only)
  -m, -master <path>      master data file (env CARDLEDGER_MASTER, default: masterdata.json)
  -v, -verbose            log debug messages
  -h, -help               show this help and exit

Settings are also read from a .env file in the working directory.
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	closeLog, err := setupLogger(cfg.LogPath, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}
	slog.Debug("configuration loaded", "db", cfg.DBPath, "addr", cfg.Addr, "master", cfg.MasterPath)

	// A missing database is created and seeded with the default card list.
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		seeded, err := initDatabase(cfg.DBPath)
		if err != nil {
			slog.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Database created: %s\n", cfg.DBPath)
		fmt.Printf("Card master list seeded with %d cards.\n\n", seeded)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Ensure schema exists (idempotent).
	if err := db.EnsureSchema(database); err != nil {
		slog.Error("failed to ensure database schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "path", cfg.DBPath)

	master, err := masterdata.Open(cfg.MasterPath)
	if err != nil {
		slog.Error("failed to load master data", "error", err)
		os.Exit(1)
	}
	slog.Info("master data ready", "path", master.Path(), "version", master.Get().Version())

	svc := sales.NewService(database, slog.Default())

	apiRouter := api.NewRouter(svc, master)
	webRouter, err := web.NewRouter(svc, master)
	if err != nil {
		slog.Error("failed to set up web router", "error", err)
		os.Exit(1)
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.LoggingMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing database")
}

// initDatabase creates a database at path with the schema and the default
// card master list. It returns the number of cards seeded. On failure the
// half-created file is removed.
func initDatabase(path string) (int, error) {
	database, err := db.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}

	if err := seedDatabase(database); err != nil {
		database.Close()
		os.Remove(path)
		return 0, err
	}
	return len(db.DefaultCards), database.Close()
}

func seedDatabase(database *sqlx.DB) error {
	if err := db.EnsureSchema(database); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	if _, err := store.SeedCards(context.Background(), database, db.DefaultCards); err != nil {
		return fmt.Errorf("seeding cards: %w", err)
	}
	return nil
}
