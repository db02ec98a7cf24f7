package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger writes tagged, colored log lines to stdout and optionally
// mirrors them (without color) to a file given by LOG_FILE.
type Logger struct {
	mu    sync.Mutex
	file  *os.File
	debug bool
}

var (
	debugColor = color.New(color.FgHiBlack)
	infoColor  = color.New(color.FgCyan)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	fatalColor = color.New(color.FgRed, color.Bold)
	tagColor   = color.New(color.FgMagenta, color.Bold)
)

func NewLogger() *Logger {
	l := &Logger{
		debug: os.Getenv("DEBUG") == "true",
	}

	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: cannot open %s: %v\n", path, err)
		} else {
			l.file = f
		}
	}

	return l
}

// Close releases the file sink if one was opened.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

func (l *Logger) write(level string, levelColor *color.Color, tag, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Printf("%s %s %s %s\n",
		ts,
		levelColor.Sprintf("[%s]", level),
		tagColor.Sprintf("[%s]", tag),
		message,
	)
	if l.file != nil {
		fmt.Fprintf(l.file, "%s [%s] [%s] %s\n", ts, level, tag, message)
	}
}

func (l *Logger) Debug(tag, message string) {
	if !l.debug {
		return
	}
	l.write("DEBUG", debugColor, tag, message)
}

func (l *Logger) Info(tag, message string) {
	l.write("INFO", infoColor, tag, message)
}

func (l *Logger) Warn(tag, message string) {
	l.write("WARN", warnColor, tag, message)
}

func (l *Logger) Error(tag, message string) {
	l.write("ERROR", errorColor, tag, message)
}

// Fatal logs the message and terminates the process.
func (l *Logger) Fatal(tag, message string) {
	l.write("FATAL", fatalColor, tag, message)
	l.Close()
	os.Exit(1)
}

// LogProcess marks lifecycle stages (startup, seeding, shutdown).
func (l *Logger) LogProcess(stage, message string) {
	l.Info(stage, message)
}

// LogAPI records a handled HTTP request.
func (l *Logger) LogAPI(method, path, status, duration string) {
	l.Info("API", fmt.Sprintf("%s %s - %s (%s)", method, path, status, duration))
}

// LogDatabase records a storage operation against a collection.
func (l *Logger) LogDatabase(operation, collection, message string) {
	l.Debug("DATABASE", fmt.Sprintf("%s %s: %s", operation, collection, message))
}

// LogSecurity records authentication and access events.
func (l *Logger) LogSecurity(event, message string) {
	l.Warn("SECURITY", fmt.Sprintf("%s: %s", event, message))
}

// LogOrder records order lifecycle events.
func (l *Logger) LogOrder(action, orderID, message string) {
	l.Info("ORDER", fmt.Sprintf("[%s] %s: %s", action, orderID, message))
}
