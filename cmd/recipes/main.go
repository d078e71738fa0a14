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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/api"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/config"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/listing"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/metrics"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/render"
	"github.com/mwhite7112/woodpantry-recipefetch/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	envFile  string
	baseURL  string
	endpoint string
	logLevel string
	timeout  time.Duration
	port     int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "recipes",
		Short:        "Fetch and browse the recipe collection",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.envFile, "env-file", ".env", "optional dotenv file read before RECIPES_* variables")
	pf.StringVar(&f.baseURL, "base-url", "", "recipe host (default "+clients.BaseURL+" or RECIPES_BASE_URL)")
	pf.StringVar(&f.endpoint, "endpoint", "", "server behavior: all, malformed or empty (default all or RECIPES_ENDPOINT)")
	pf.StringVar(&f.logLevel, "log-level", "", "zerolog level (default info or RECIPES_LOG_LEVEL)")
	pf.DurationVar(&f.timeout, "timeout", 0, "overall HTTP timeout (default 30s or RECIPES_HTTP_TIMEOUT)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recipe list over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, f)
		},
	}
	serve.Flags().IntVar(&f.port, "port", 0, "listen port (default 8080 or RECIPES_PORT)")

	list := &cobra.Command{
		Use:   "list",
		Short: "Fetch the recipe list once and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, f)
		},
	}

	root.AddCommand(serve, list)
	return root
}

func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = f.baseURL
	}
	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint = f.endpoint
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTPTimeout = f.timeout
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newController wires transport, client, service and controller.
func newController(cfg config.Config, logger zerolog.Logger, m *metrics.Metrics) *listing.Controller {
	client := clients.NewNetworkClient(
		clients.NewHTTPTransport(cfg.HTTPTimeout),
		clients.WithBaseURL(cfg.BaseURL),
		clients.WithLogger(logger),
		clients.WithObserver(m),
	)
	svc := service.New(client, service.WithEndpoint(cfg.EndpointPath()))
	return listing.New(svc, listing.WithLogger(logger), listing.WithObserver(m))
}

func runList(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	ctrl := newController(cfg, logger, nil)
	fetchErr := ctrl.FetchRecipes(cmd.Context())
	if err := render.Text(cmd.OutOrStdout(), ctrl.ViewState()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if fetchErr != nil {
		return fmt.Errorf("fetch recipes: %w", fetchErr)
	}
	return nil
}

func runServe(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	logger := zerolog.New(os.Stdout).Level(cfg.Level()).With().Timestamp().Str("service", "recipefetch").Logger()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	ctrl := newController(cfg, logger, m)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := ctrl.FetchRecipes(ctx); err != nil {
			logger.Warn().Err(err).Msg("initial fetch failed; waiting for refresh")
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.NewRouter(ctrl, logger, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("base_url", cfg.BaseURL).Str("endpoint", cfg.EndpointPath()).Msg("recipe list listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
