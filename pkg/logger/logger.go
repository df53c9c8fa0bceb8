package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Level é o nível mínimo registrado
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converte "debug", "info", "warn" ou "error"; o padrão é info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// SimpleLogger é uma implementação simples de Logger
type SimpleLogger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger(level Level) Logger {
	return NewLoggerWithWriters(level, os.Stdout, os.Stderr)
}

// NewLoggerWithWriters cria um Logger escrevendo em out e errOut
func NewLoggerWithWriters(level Level, out, errOut io.Writer) Logger {
	// nível junto da mensagem: "2026/03/10 10:30:00 WARN: msg"
	flags := log.Ldate | log.Ltime | log.Lmsgprefix
	return &SimpleLogger{
		level:       level,
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
		warnLogger:  log.New(out, "WARN: ", flags),
	}
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.level <= LevelInfo {
		l.infoLogger.Print(format(msg, keysAndValues))
	}
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errorLogger.Print(format(msg, keysAndValues))
}

// Debug registra uma mensagem de debug
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.level <= LevelDebug {
		l.debugLogger.Print(format(msg, keysAndValues))
	}
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	if l.level <= LevelWarn {
		l.warnLogger.Print(format(msg, keysAndValues))
	}
}

// format monta "msg chave=valor ...". Uma chave sem valor recebe "(MISSING)".
func format(msg string, keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		b.WriteByte(' ')
		fmt.Fprintf(&b, "%v=", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, "%v", keysAndValues[i+1])
		} else {
			b.WriteString("(MISSING)")
		}
	}
	return b.String()
}

type nopLogger struct{}

// NewNopLogger retorna um Logger que descarta tudo
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
