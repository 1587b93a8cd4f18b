package main

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/singlishproject/gosinglish/singlish"
)

func loadScheme(path string) (*singlish.Scheme, error) {
	if path == "" {
		return singlish.SinhalaScheme(), nil
	}
	if strings.HasSuffix(path, ".vst") {
		return singlish.LoadSymbolStore(path)
	}
	return singlish.LoadSchemeFile(path)
}

func main() {
	configFlag := flag.String("config", "config.yaml", "Path to the config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config, err := LoadConfig(*configFlag)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configFlag).Msg("failed to load config")
	}

	if !config.Debug {
		log = log.Level(zerolog.InfoLevel)
	}

	scheme, err := loadScheme(config.SchemeFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load scheme")
	}

	engine, err := singlish.NewFromScheme(scheme)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compile scheme")
	}

	engine.Debug = config.Debug
	engine.SetLogger(log)

	app := &App{engine: engine, log: log}

	server := &http.Server{
		Addr:              config.Listen,
		Handler:           app.routes(config.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", config.Listen).
			Str("scheme", scheme.Details.Identifier).
			Msg("listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
