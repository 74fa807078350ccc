package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env    string    // development -> consola legible; cualquier otro -> JSON
	Level  string    // trace, debug, info, warn, error (sin distinguir mayúsculas)
	App    string    // si no está vacío se agrega como campo "app" en cada línea
	Output io.Writer // por defecto os.Stdout
}

// Logger envuelve zerolog y se inyecta en handlers y comandos.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del proceso y redirige el logger global de zerolog hacia él.
func New(cfg Config) *Logger {
	l := build(cfg)
	log.Logger = l.zl
	return l
}

// NewWriter crea un logger sobre w sin tocar el global. Pensado para capturar líneas en tests.
func NewWriter(w io.Writer, level string) *Logger {
	return build(Config{Level: level, Output: w})
}

// Nop devuelve un logger que descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func build(cfg Config) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	ctx := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.App != "" {
		ctx = ctx.Str("app", cfg.App)
	}
	return &Logger{zl: ctx.Logger()}
}

// ParseLevel interpreta el nivel configurado; vacío o desconocido equivale a info.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Fields devuelve un sublogger con pares clave/valor fijos. Los valores vacíos se omiten
// para que una petición anónima no deje "subject":"" en cada línea.
func (l *Logger) Fields(kv ...string) *Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			ctx = ctx.Str(kv[i], kv[i+1])
		}
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
