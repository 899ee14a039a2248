package main

import (
	"churnlens/pkg/config"
	"churnlens/pkg/logging"
	"churnlens/pkg/ui"
)

func main() {
	cfg := config.DefaultAppConfig()
	log := logging.New(logging.Config{Level: cfg.LogLevel, Pretty: true})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().Uint64("seed", cfg.Seed).Int("size", cfg.SampleSize).Msg("starting churnlens")
	ui.NewChurnApp(cfg, log).Run()
}
