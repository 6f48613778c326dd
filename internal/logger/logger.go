package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger encapsula um zerolog.Logger com helpers por componente
type Logger struct {
	logger zerolog.Logger
}

// Default é a instância usada pelos helpers de pacote
var Default *Logger

// Init configura o logger padrão lendo LOG_LEVEL do ambiente
func Init() {
	InitWithWriter(os.Stdout)
}

// InitWithWriter configura o logger padrão escrevendo em out
func InitWithWriter(out io.Writer) {
	level := getLogLevel()

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	Default = New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "02/01/2006 15:04:05",
	})
}

// New cria um logger com timestamp escrevendo em out
func New(out io.Writer) *Logger {
	return &Logger{logger: zerolog.New(out).With().Timestamp().Logger()}
}

func getLogLevel() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// WithField cria um logger filho com um campo fixo
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

// Debug retorna um evento de nível debug
func (l *Logger) Debug() *zerolog.Event {
	return l.logger.Debug()
}

// Info retorna um evento de nível info
func (l *Logger) Info() *zerolog.Event {
	return l.logger.Info()
}

// Warn retorna um evento de nível warn
func (l *Logger) Warn() *zerolog.Event {
	return l.logger.Warn()
}

// Error retorna um evento de nível error
func (l *Logger) Error() *zerolog.Event {
	return l.logger.Error()
}

// Fatal retorna um evento que encerra o processo após o Msg
func (l *Logger) Fatal() *zerolog.Event {
	return l.logger.Fatal()
}

func component(name string) *Logger {
	if Default == nil {
		Init()
	}
	return Default.WithField("component", name)
}

// ForScraper cria um logger para o scraper da Amazon
func ForScraper() *Logger {
	return component("scraper")
}

// ForPipeline cria um logger para o processamento do arquivo de entrada
func ForPipeline() *Logger {
	return component("pipeline")
}

// ForNotifier cria um logger para o envio ao Telegram
func ForNotifier() *Logger {
	return component("notifier")
}
