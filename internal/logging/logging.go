// Package logging appends timestamped audit lines to the per-component
// log files shared by the kvm-appvm components (the VM manager, the
// qemu hook and the guest init process).
package logging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/valyala/bytebufferpool"
)

// timeLayout is the timestamp format shared with the shell surface.
const timeLayout = "2006-01-02 15:04:05"

// Config is the logging layout: the log directory and the component to
// file name mapping. It is fixed for every deployed component; tests
// build one with Default and point Dir somewhere writable.
type Config struct {
	Dir         string
	Files       map[string]string
	DefaultFile string
}

// Default returns the layout used by every kvm-appvm component.
func Default() Config {
	return Config{
		Dir: "/var/log/kvm-appvm",
		Files: map[string]string{
			"appvm":      "appvm.log",
			"qemu-hook":  "qemu-hook.log",
			"guest-init": "guest-init.log",
		},
		DefaultFile: "appvm.log",
	}
}

// Filename resolves a component name to its log file name. Unknown
// components map to DefaultFile, so the lookup never fails.
func (c Config) Filename(component string) string {
	if name, ok := c.Files[component]; ok {
		return name
	}
	return c.DefaultFile
}

// Logger appends audit lines for the kvm-appvm components. Delivery is
// best effort: permission failures degrade to the error stream instead
// of failing the caller; any other filesystem error is returned.
type Logger struct {
	cfg    Config
	errOut io.Writer
}

// New returns a Logger writing under cfg.Dir. Fallback output goes to
// errOut, or os.Stderr when errOut is nil.
func New(cfg Config, errOut io.Writer) *Logger {
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Logger{cfg: cfg, errOut: errOut}
}

// EnsureLogDir creates the log directory if it does not already exist.
// It reports false after warning on the error stream when creation is
// denied for lack of permissions; the caller then logs to the error
// stream instead. Errors other than permission denial are returned.
func (l *Logger) EnsureLogDir() (bool, error) {
	if _, err := os.Stat(l.cfg.Dir); err == nil {
		return true, nil
	}
	if err := os.MkdirAll(l.cfg.Dir, 0755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			fmt.Fprintf(l.errOut, "Warning: Cannot create %s, logging to stderr\n", l.cfg.Dir)
			return false, nil
		}
		return false, fmt.Errorf("create log dir: %w", err)
	}
	return true, nil
}

// Log appends one formatted entry to the component's log file. An empty
// command or message is omitted from the line. When the directory
// cannot be created the line goes to the error stream; when the file
// itself is not writable a warning and the line both go to the error
// stream so the entry is not lost.
func (l *Logger) Log(component, action, command, message string) error {
	line := l.format(action, command, message)

	ok, err := l.EnsureLogDir()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprint(l.errOut, line)
		return nil
	}

	path := filepath.Join(l.cfg.Dir, l.cfg.Filename(component))
	if err := appendLine(path, line); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			fmt.Fprintf(l.errOut, "Warning: Cannot write to %s\n", path)
			fmt.Fprint(l.errOut, line)
			return nil
		}
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// LogCommand records a command invocation, joined into the single
// string a shell would show.
func (l *Logger) LogCommand(component, action string, args []string) error {
	return l.Log(component, action, strings.Join(args, " "), "")
}

func (l *Logger) format(action, command, message string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteByte('[')
	buf.WriteString(time.Now().Format(timeLayout))
	buf.WriteString("] [")
	buf.WriteString(action)
	buf.WriteByte(']')
	if command != "" {
		buf.WriteString(" command: ")
		buf.WriteString(command)
	}
	if message != "" {
		buf.WriteByte(' ')
		buf.WriteString(message)
	}
	buf.WriteByte('\n')
	return buf.String()
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
