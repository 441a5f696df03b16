package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/judgekit/team-fixtures/app"
	"github.com/judgekit/team-fixtures/app/categories"
	"github.com/judgekit/team-fixtures/fixtures"
	"github.com/judgekit/team-fixtures/internal/config"
	"github.com/judgekit/team-fixtures/internal/database"
	"github.com/judgekit/team-fixtures/internal/logger"
	"github.com/judgekit/team-fixtures/models"
)

var errNoFixtures = errors.New("no fixtures named; pass fixture names, --list or --serve")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fixtures:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("fixtures", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "env file to load before reading the environment")
	migrate := flags.Bool("migrate", false, "create or update the schema before loading fixtures")
	serveFlag := flags.Bool("serve", false, "serve the category listing after loading fixtures")
	list := flags.Bool("list", false, "print the available fixtures and exit")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: fixtures [flags] <fixture>...")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.NArg() == 0 && !*list && !*serveFlag {
		flags.Usage()
		return errNoFixtures
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log, "fixtures")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if *migrate || cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db, log, &models.TeamCategory{}); err != nil {
			return err
		}
	}

	loader := fixtures.Default(db, log)
	if *list {
		for _, name := range loader.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if err := loader.Load(ctx, flags.Args()...); err != nil {
		return err
	}

	if !*serveFlag {
		return nil
	}

	handler := categories.NewCategoryHandler(models.NewTeamCategoriesRepository(db), log)
	srv := &http.Server{
		Handler:      app.NewRouter(handler),
		Addr:         ":" + cfg.HTTP.Port,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	return serve(ctx, srv, ln, log, 5*time.Second)
}

// serve runs srv on ln until ctx is done, then shuts it down, giving
// in-flight requests up to shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, log *logger.Logger, shutdownTimeout time.Duration) error {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("Server shutdown failed", map[string]interface{}{
				logger.FieldError: err.Error(),
			})
		}
	}()

	log.Info("Starting server", map[string]interface{}{"addr": ln.Addr().String()})
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	<-shutdownDone
	return nil
}
