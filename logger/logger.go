// Package logger provides prefixed logging for the game binary.
// Engine packages never log; the binary and its front ends do.
package logger

import (
	"io"
	"log"
)

// Logger provides leveled logging with context.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger that writes every level to w.
func New(w io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(w, "[GANGWAR-INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(w, "[GANGWAR-WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(w, "[GANGWAR-ERROR] ", log.Ldate|log.Ltime),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Event logs a game event: a street event, a fight outcome, a save.
func (l *Logger) Event(eventType string, player string, details string) {
	l.infoLogger.Printf("[EVENT:%s] Player:%s | %s", eventType, player, details)
}
