package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog    zerolog.Logger
	diagFile   *os.File
	eventsFile *os.File
	logMu      sync.Mutex
	logReady   bool
	pid        int
	dir        string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absolute(flagPath)
	}

	// Priority 2: EVSHORTCUT_LOG_PATH environment variable
	if envPath := os.Getenv("EVSHORTCUT_LOG_PATH"); envPath != "" {
		return absolute(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absolute(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	eventsPath := filepath.Join(dir, "events_log.txt")
	eventsFile, err = os.OpenFile(eventsPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		diagFile.Close()
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if eventsFile != nil {
		eventsFile.Close()
		eventsFile = nil
	}
	logReady = false
}

// Logger returns the diagnostics logger, or a disabled one before Init.
func Logger() zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	if !logReady {
		return zerolog.Nop()
	}
	return diagLog
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

// ShortcutEvent appends one line per shortcut event to events_log.txt.
func ShortcutEvent(shortcut, state string) {
	if !logReady {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	line := fmt.Sprintf("%s\t[%d]\t%s\t%s\n", time.Now().Format("2006-01-02 15:04:05.000"), pid, shortcut, state)
	eventsFile.WriteString(line)
}

func SessionStart(devices []string, shortcuts int, policy string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Strs("devices", devices).
		Int("shortcuts", shortcuts).
		Str("policy", policy).
		Msg("session_start")
}

func SessionEnd(count int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("count", count).
		Msg("session_end")
}
