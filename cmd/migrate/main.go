package main

import (
	"concierge/config"
	"concierge/helper"
	"concierge/shared/logger"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	usage := strings.Join(helper.Actions, ", ")

	if len(os.Args) < 2 || !slices.Contains(helper.Actions, os.Args[1]) {
		log.Fatal().Str("usage", "migrate <"+strings.Join(helper.Actions, "|")+">").Msgf("Migration action is required, one of %s", usage)
	}

	cfg := config.Get()

	logger.Configure(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
