package logger

import (
	"concierge/config"
	"concierge/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger at trace level. Configure narrows it once config is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// Configure applies SERVER_LOG_LEVEL. Outside development the output becomes JSON lines
// carrying the app name, which is what the log shipper expects.
func Configure(cfg *config.Config) {
	Setup(os.Stdout, cfg)
}

func Setup(out io.Writer, cfg *config.Config) {
	if cfg.Server.Env != constant.Empty && cfg.Server.Env != constant.ServerEnvDevelopment {
		ctx := zerolog.New(out).With().Timestamp()
		if cfg.App.Name != constant.Empty {
			ctx = ctx.Str("app", cfg.App.Name)
		}

		log.Logger = ctx.Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == constant.Empty {
		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("loglevel", level.String()).Str("env", cfg.Server.Env).Msg("logger configured")
}

// ErrorWithStack logs err with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
