package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/jamfrolesync/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		classicURL string
		proURL     string
		outDir     string
		reportPDF  string
		userAgent  string
		timeout    time.Duration
		configPath string
		verbose    bool
	)

	flag.StringVar(&classicURL, "classic.url", envOr("CLASSIC_URL", app.DefaultClassicURL), "Classic API privileges documentation URL")
	flag.StringVar(&proURL, "pro.url", envOr("PRO_URL", app.DefaultProURL), "Jamf Pro API privileges and deprecations documentation URL")
	flag.StringVar(&outDir, "out.dir", app.DefaultOutDir, "Directory for the generated JSON documents")
	flag.StringVar(&reportPDF, "report.pdf", "", "Optional path for a PDF catalog summary")
	flag.StringVar(&userAgent, "ua", app.DefaultUserAgent, "User-Agent for documentation requests")
	flag.DurationVar(&timeout, "timeout", app.DefaultTimeout, "Per-fetch timeout")
	flag.StringVar(&configPath, "config", os.Getenv("JAMFROLESYNC_CONFIG"), "Optional YAML config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		ClassicURL: classicURL,
		ProURL:     proURL,
		OutDir:     outDir,
		ReportPDF:  reportPDF,
		UserAgent:  userAgent,
		Timeout:    timeout,
		Verbose:    verbose,
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("sync failed")
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
