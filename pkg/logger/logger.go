package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/log"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

const jsonHeader = `{"time":"${time_rfc3339}","level":"${level}","prefix":"${prefix}"}`

// JSONLogger grava cada entrada como um objeto JSON em uma linha
type JSONLogger struct {
	l *log.Logger
}

// NewLogger cria um Logger que escreve em stdout com o nível definido em LOG_LEVEL
func NewLogger() Logger {
	return New(os.Stdout, os.Getenv("LOG_LEVEL"))
}

// New cria um Logger que escreve em w a partir do nível informado (debug, info, warn, error, off)
func New(w io.Writer, level string) Logger {
	l := log.New("parceiros-api")
	l.SetOutput(w)
	l.SetHeader(jsonHeader)
	l.SetLevel(parseLevel(level))

	return &JSONLogger{l: l}
}

// Info registra uma mensagem de informação
func (j *JSONLogger) Info(msg string, keysAndValues ...interface{}) {
	j.l.Infoj(fields(msg, keysAndValues))
}

// Error registra uma mensagem de erro
func (j *JSONLogger) Error(msg string, keysAndValues ...interface{}) {
	j.l.Errorj(fields(msg, keysAndValues))
}

// Debug registra uma mensagem de debug
func (j *JSONLogger) Debug(msg string, keysAndValues ...interface{}) {
	j.l.Debugj(fields(msg, keysAndValues))
}

// Warn registra uma mensagem de aviso
func (j *JSONLogger) Warn(msg string, keysAndValues ...interface{}) {
	j.l.Warnj(fields(msg, keysAndValues))
}

func fields(msg string, keysAndValues []interface{}) log.JSON {
	entry := log.JSON{"message": msg}

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		value := keysAndValues[i+1]
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		entry[key] = value
	}

	// chave sem valor
	if len(keysAndValues)%2 == 1 {
		entry["extra"] = fmt.Sprint(keysAndValues[len(keysAndValues)-1])
	}

	return entry
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
