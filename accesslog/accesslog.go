// accesslog.go - Append-only text log for page visits and cart events

package accesslog // Declares the package name

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Logger appends timestamped lines to a single text file. Each call opens
// the file in append mode and writes one line, so interleaved writers stay
// line-atomic as far as the OS append guarantees.
type Logger struct {
	path string
}

func New(path string) *Logger {
	return &Logger{path: path}
}

// Request records one page visit as "[timestamp] METHOD URL".
func (l *Logger) Request(method, url string) error {
	return l.append(fmt.Sprintf("[%s] %s %s\n", timestamp(), method, url))
}

// CartAdd records a user adding a session to their cart.
func (l *Logger) CartAdd(email, session string) error {
	return l.append(fmt.Sprintf("[%s] Usuario %s añadió sesión: %s\n", timestamp(), email, session))
}

// CartRemove records a user removing a session from their cart.
func (l *Logger) CartRemove(email, session string) error {
	return l.append(fmt.Sprintf("[%s] Usuario %s eliminó sesión: %s\n", timestamp(), email, session))
}

func (l *Logger) append(line string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line)
	return err
}

// timestamp formats the current time as ISO-8601 in UTC with millisecond
// precision, e.g. 2026-08-31T10:15:00.000Z.
func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
