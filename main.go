package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/client"
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/db"
	"github.com/sidereusnuntius/commune/internal/db/impl"
	"github.com/sidereusnuntius/commune/internal/db/pool"
	"github.com/sidereusnuntius/commune/internal/gateway"
	"github.com/sidereusnuntius/commune/internal/initialization"
	core "github.com/sidereusnuntius/commune/internal/service/impl"
	"github.com/sidereusnuntius/commune/internal/state"
	"github.com/sidereusnuntius/commune/internal/web"
	"github.com/sidereusnuntius/commune/internal/webfinger"
	"github.com/sidereusnuntius/commune/internal/wellknown"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "commune",
		Short:         "ActivityPub server for people and communities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		userCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up the global logger accordingly.
func loadConfig() (config.Configuration, error) {
	cfg, err := config.ReadConfig(configFile)
	if err != nil {
		return cfg, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		level = min(level, zerolog.DebugLevel)
	}
	zerolog.SetGlobalLevel(level)
	return cfg, nil
}

// openStore opens and migrates the database, returning the pooled store on top of it.
func openStore(cfg config.Configuration) (*sql.DB, db.DB, error) {
	d, err := initialization.OpenDB(cfg.DB.Path, cfg.DB.PoolSize)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("path", cfg.DB.Path).Msg("database connection established")

	if err = initialization.SetupDB(d, cfg.DB.MigrationsFolder, "sqlite3"); err != nil {
		d.Close()
		return nil, nil, err
	}
	return d, impl.New(cfg, d, pool.New(cfg.DB.PoolSize, cfg.DB.AcquireTimeout)), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the federation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			instance, key, err := initialization.EnsureInstance(ctx, store, &cfg)
			if err != nil {
				return fmt.Errorf("instance actor: %w", err)
			}

			plain, err := client.New(cfg.Federation, &http.Client{})
			if err != nil {
				return err
			}
			fetcher := plain
			if cfg.Federation.AuthorizedFetch {
				if fetcher, err = client.New(cfg.Federation, &http.Client{}, client.WithSigner(key, instance.KeyID())); err != nil {
					return err
				}
				log.Info().Str("key", instance.KeyID()).Msg("actor fetches are signed")
			}

			s := state.State{DB: store, Config: cfg}
			gw := gateway.New(store, fetcher, webfinger.NewResolver(plain), &cfg)
			handler := web.New(&cfg, core.New(s), gw)

			router := chi.NewRouter()
			handler.Mount(router)
			wellknown.Mount(&s, router)

			server := &http.Server{
				Addr:              cfg.Listen,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errs := make(chan error, 1)
			go func() {
				log.Info().Str("address", cfg.Listen).Str("domain", cfg.Domain).Msg("started server")
				errs <- server.ListenAndServe()
			}()

			select {
			case err = <-errs:
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err = server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err = <-errs; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			d, _, err := openStore(cfg)
			if err != nil {
				return err
			}
			return d.Close()
		},
	}
}
