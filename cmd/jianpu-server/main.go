package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harmonica-tools/jianpu/internal/logging"
	"github.com/harmonica-tools/jianpu/internal/server"
	"github.com/harmonica-tools/jianpu/pkg/config"
)

var buildVersion string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		debugLogging bool
		addr         string
		configFile   string
		keyAliases   string
		opts         = server.Options{}
	)
	flag.BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	flag.StringVar(&addr, "addr", ":8080", "Address to serve the transpose API and metrics on")
	flag.StringVar(&configFile, "config", "", "Optional YAML file with default keys and aliases")
	flag.StringVar(&keyAliases, "key-aliases", "", "Comma-separated alias=key pairs, e.g. H=B,Cis=C#")
	flag.Float64Var(&opts.QPS, "qps", 50, "Max transpose requests per second; 0 disables limiting")
	flag.IntVar(&opts.Burst, "burst", 10, "Requests allowed above the QPS limit in a burst")
	flag.Int64Var(&opts.MaxBytes, "max-bytes", 1<<20, "Largest accepted request body")
	flag.BoolVar(&opts.StrictKeys, "strict-keys", false, "Reject key names outside the key table instead of treating them as C")
	flag.Parse()

	logger, err := logging.New(debugLogging, buildVersion)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	opts.Logger = logger
	opts.DefaultSource = cfg.Source
	opts.DefaultTarget = cfg.Target
	opts.StrictKeys = opts.StrictKeys || cfg.StrictKeys
	opts.KeyAliases = cfg.KeyAliases
	if opts.KeyAliases == nil {
		opts.KeyAliases = config.KeyAliases{}
	}
	for alias, key := range config.ParseKeyAliases(keyAliases) {
		opts.KeyAliases[alias] = key
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(opts).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving transpose api", "addr", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
