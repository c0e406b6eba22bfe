package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/ivf-predictor/webclient/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Init configures the global zerolog logger. Only the first call has an effect.
func Init(cfg config.LogConfig) {
	once.Do(func() {
		setup(os.Stdout, cfg)
		log.Info().Str("level", zerolog.GlobalLevel().String()).Msg("Logger initialized")
	})
}

func setup(out io.Writer, cfg config.LogConfig) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		return parts[len(parts)-1] + ":" + strconv.Itoa(line)
	}

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "02-01-2006 15:04:05.000"}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Caller().Str("app", "ivf-predictor-web").Logger()
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
