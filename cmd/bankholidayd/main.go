package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/therootcompany/bankholiday"
	"github.com/therootcompany/bankholiday/http/middleware"
	"github.com/therootcompany/bankholiday/internal/api"
)

type MainConfig struct {
	defaultAddress string
	defaultPort    int
	address        string
	port           int
	showVersion    bool
	configPath     string
	ratePerMinute  int
	rateBurst      int
	logLevel       string
	jurisdiction   string
}

func main() {
	cfg := MainConfig{
		defaultAddress: "0.0.0.0",
		defaultPort:    3080,
		ratePerMinute:  120,
		rateBurst:      20,
		logLevel:       "info",
		jurisdiction:   string(bankholiday.UK),
	}

	// config file < .env < flags
	cfg.configPath = peekOption(os.Args[1:], []string{"-config", "--config"}, "")
	if cfg.configPath != "" {
		if err := loadConfigFile(cfg.configPath, &cfg); err != nil {
			printVersion(os.Stderr)
			fmt.Fprintf(os.Stderr, "\nerror: %v\n", err)
			os.Exit(1)
			return
		}
	}

	var envErr error
	{
		envPath := peekOption(os.Args[1:], []string{"-envfile", "--envfile"}, ".env")

		if err := godotenv.Load(envPath); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				envErr = err
			}
		}
		// the environment may be set without a .env
		if err := parseEnvs(&cfg); err != nil {
			printVersion(os.Stderr)
			fmt.Fprintf(os.Stderr, "\nerror: %v\n", err)
			os.Exit(1)
			return
		}
	}

	// note: --help is implicit, but handled specially below
	mainFlags := flag.NewFlagSet("", flag.ContinueOnError)
	mainFlags.BoolVar(&cfg.showVersion, "version", false, "Show version and exit")
	mainFlags.IntVar(&cfg.port, "port", cfg.defaultPort, "Port to listen on")
	mainFlags.StringVar(&cfg.address, "address", cfg.defaultAddress, "Address to bind to")
	_ = mainFlags.String("envfile", ".env", "Load ENVs from this file")
	_ = mainFlags.String("config", "", "Load settings from this YAML file")
	mainFlags.StringVar(&cfg.jurisdiction, "jurisdiction", cfg.jurisdiction, "Jurisdiction used for /api/today (uk, us)")
	mainFlags.IntVar(&cfg.ratePerMinute, "rate-limit", cfg.ratePerMinute, "Requests per minute per client IP (0 to disable)")
	mainFlags.IntVar(&cfg.rateBurst, "rate-burst", cfg.rateBurst, "Requests a client may make at once")
	mainFlags.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "debug, info, warn or error")

	flagOut := os.Stderr
	mainFlags.Usage = func() {
		_, _ = fmt.Fprintf(flagOut, "USAGE\n")
		_, _ = fmt.Fprintf(flagOut, "   bankholidayd [options]\n")
		_, _ = fmt.Fprintf(flagOut, "\n")
		_, _ = fmt.Fprintf(flagOut, "EXAMPLES\n")
		_, _ = fmt.Fprintf(flagOut, "   bankholidayd --address 127.0.0.1 --port 3080\n")
		_, _ = fmt.Fprintf(flagOut, "   bankholidayd --config ./bankholidayd.yml\n")
		_, _ = fmt.Fprintf(flagOut, "\n")
		_, _ = fmt.Fprintf(flagOut, "OPTIONS\n")
		mainFlags.PrintDefaults()
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-V", "version", "-version", "--version":
			printVersion(os.Stdout)
			os.Exit(0)
			return
		case "help", "-help", "--help":
			printVersion(os.Stdout)
			_, _ = fmt.Fprintf(os.Stdout, "\n")

			flagOut = os.Stdout
			mainFlags.SetOutput(flagOut)
			mainFlags.Usage()
			os.Exit(0)
			return
		}
	}
	printVersion(os.Stderr)
	fmt.Fprintf(os.Stderr, "\n")

	if err := mainFlags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)

		mainFlags.Usage()
		os.Exit(1)
		return
	}
	if cfg.showVersion {
		os.Exit(0)
		return
	}
	if err := cfg.validateRateLimit(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
		return
	}

	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
		return
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Warn("could not read .env", zap.Error(envErr))
	}

	if err := run(&cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}

func newHTTPServer(cfg *MainConfig, logger *zap.Logger) (*http.Server, error) {
	j, err := bankholiday.ParseJurisdiction(cfg.jurisdiction)
	if err != nil {
		return nil, err
	}

	a := &api.API{
		StartTime:    time.Now(),
		Version:      version,
		Logger:       logger,
		Jurisdiction: j,
	}

	mux := http.NewServeMux()
	limiter := middleware.NewRateLimiter(cfg.ratePerMinute, cfg.rateBurst)
	a.Register(middleware.WithMux(mux, middleware.AccessLog(logger), limiter.Middleware))
	mux.Handle("GET /metrics", promhttp.Handler())

	// allow http/1.1 and h2 from tls-terminating proxy
	protocols := &http.Protocols{}
	protocols.SetHTTP1(true)
	protocols.SetUnencryptedHTTP2(true)
	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.address, strconv.Itoa(cfg.port)),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second, // still needs per-request ReadTimeout
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       (30 + 1) * time.Second,
		MaxHeaderBytes:    1 << 14, // 2^14 = 16k
		Protocols:         protocols,
	}

	return server, nil
}

func run(cfg *MainConfig, logger *zap.Logger) error {
	server, err := newHTTPServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Sugar().Infof("Listening for http on %s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
