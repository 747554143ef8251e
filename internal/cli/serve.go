package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	api "github.com/exam-portal/exam-portal/internal/api/http"
	"github.com/exam-portal/exam-portal/internal/auth"
	"github.com/exam-portal/exam-portal/internal/config"
	"github.com/exam-portal/exam-portal/internal/db"
	"github.com/exam-portal/exam-portal/internal/exam"
	"github.com/exam-portal/exam-portal/internal/identity"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the exam server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath)
		},
	}
}

func runServer(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, users, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}

	// Publish the bootstrap catalog. The catalog is read-only afterwards.
	for _, t := range exam.DefaultTests() {
		if err := store.PutTest(ctx, t); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	authSvc := auth.NewAuthService(cfg.HMACSecret)
	svc := exam.NewService(store, store)
	router := api.NewRouter(svc, users, authSvc, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("server stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// openStores picks the backends by driver. "memory" matches the reference
// behavior; sqlite/postgres put the same interfaces over a durable store.
func openStores(ctx context.Context, cfg config.Config) (exam.Store, identity.Store, error) {
	if cfg.DBDriver == "" || cfg.DBDriver == "memory" {
		return exam.NewMemoryStore(), identity.NewMemoryStore(), nil
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	dbh, err := db.Open(openCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db open failed: %w", err)
	}
	return exam.NewSQLStore(dbh), identity.NewSQLStore(dbh), nil
}
