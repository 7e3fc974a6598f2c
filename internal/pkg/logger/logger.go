package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// Config controla o formato e o nível do log.
type Config struct {
	Env   string // development -> console legível; demais -> JSON
	Level string // debug, info, warn, error
}

// ZeroLogger é a implementação concreta da interface Logger sobre zerolog.
type ZeroLogger struct {
	zl zerolog.Logger
}

// New cria o logger a partir da configuração. Chamado no main.go.
func New(cfg Config) *ZeroLogger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return NewWithWriter(w, cfg.Level)
}

// NewLogger cria um logger JSON no stdout com o nível informado.
func NewLogger(level string) Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter permite direcionar a saída (útil em testes).
func NewWithWriter(w io.Writer, level string) *ZeroLogger {
	zl := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	return &ZeroLogger{zl: zl}
}

// NewNop descarta tudo.
func NewNop() Logger {
	return &ZeroLogger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}

// Fatal registra e encerra o processo (os.Exit(1) via zerolog).
func (l *ZeroLogger) Fatal(msg string, err error) {
	l.zl.Fatal().Err(err).Msg(msg)
}
