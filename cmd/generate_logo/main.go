package main

import (
	"churnlens/pkg/config"
	"churnlens/pkg/logging"
	"churnlens/pkg/ui"
)

func main() {
	log := logging.New(logging.Config{Pretty: true})

	if err := ui.GenerateLogo(config.DefaultLogoPath); err != nil {
		log.Fatal().Err(err).Msg("failed to generate logo")
	}
	log.Info().Str("path", config.DefaultLogoPath).Msg("logo generated")
}
