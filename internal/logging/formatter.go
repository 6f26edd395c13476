package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type colorFunc func(format string, a ...interface{}) string

// Colors assigned to servers that have no preset color, in rotation order.
var rotationColors = []colorFunc{
	color.New(color.FgGreen).SprintfFunc(),
	color.New(color.FgYellow).SprintfFunc(),
	color.New(color.FgBlue).SprintfFunc(),
	color.New(color.FgHiCyan).SprintfFunc(),
	color.New(color.FgHiGreen).SprintfFunc(),
	color.New(color.FgHiMagenta).SprintfFunc(),
}

// ColoredFormatter renders log entries for terminal display, coloring the
// level and the server name so interleaved logs from several servers stay
// readable.
type ColoredFormatter struct {
	// TimestampFormat is the format used for timestamps
	TimestampFormat string

	mu           sync.Mutex
	serverColors map[string]colorFunc
}

// NewColoredFormatter creates a new ColoredFormatter with preset colors for
// the built-in servers.
func NewColoredFormatter() *ColoredFormatter {
	return &ColoredFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
		serverColors: map[string]colorFunc{
			"calculator": color.New(color.FgCyan).SprintfFunc(),
			"ctools":     color.New(color.FgMagenta).SprintfFunc(),
		},
	}
}

// Format formats a logrus entry
func (f *ColoredFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	b.WriteString(entry.Time.Format(f.TimestampFormat))
	b.WriteString(" ")

	b.WriteString(levelColor(entry.Level)(strings.ToUpper(entry.Level.String())))
	b.WriteString(" ")

	if server, ok := entry.Data["server"]; ok {
		serverName := fmt.Sprintf("%v", server)
		b.WriteString("[")
		b.WriteString(f.serverColor(serverName)(serverName))
		if pid, ok := entry.Data["pid"]; ok {
			fmt.Fprintf(b, ":%v", pid)
		}
		b.WriteString("] ")

		// Drop identity fields so they are not printed twice
		delete(entry.Data, "server")
		delete(entry.Data, "pid")
	}

	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Fprintf(b, " %s=%v", key, entry.Data[key])
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// serverColor returns the color function for a server name, assigning one
// from the rotation on first sight.
func (f *ColoredFormatter) serverColor(serverName string) colorFunc {
	f.mu.Lock()
	defer f.mu.Unlock()

	if fn, ok := f.serverColors[serverName]; ok {
		return fn
	}

	fn := rotationColors[len(f.serverColors)%len(rotationColors)]
	f.serverColors[serverName] = fn
	return fn
}

func levelColor(level logrus.Level) colorFunc {
	switch level {
	case logrus.DebugLevel:
		return color.New(color.FgHiBlack).SprintfFunc()
	case logrus.WarnLevel:
		return color.New(color.FgYellow).SprintfFunc()
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return color.New(color.FgRed).SprintfFunc()
	default:
		return color.New(color.FgHiWhite).SprintfFunc()
	}
}

// ParseJSONLogEntry parses a JSON log line written by NewLogger back into a
// logrus.Entry for display.
func ParseJSONLogEntry(line string) (*logrus.Entry, error) {
	entry := &logrus.Entry{
		Logger: logrus.New(),
		Data:   make(logrus.Fields),
	}

	if err := json.Unmarshal([]byte(line), &entry.Data); err != nil {
		return nil, err
	}

	if timestampStr, ok := entry.Data["timestamp"].(string); ok {
		timestamp, err := time.Parse(time.RFC3339Nano, timestampStr)
		if err != nil {
			timestamp = time.Now()
		}
		entry.Time = timestamp
		delete(entry.Data, "timestamp")
	} else {
		entry.Time = time.Now()
	}

	if levelStr, ok := entry.Data["level"].(string); ok {
		level, err := logrus.ParseLevel(levelStr)
		if err != nil {
			level = logrus.InfoLevel
		}
		entry.Level = level
		delete(entry.Data, "level")
	} else {
		entry.Level = logrus.InfoLevel
	}

	if msg, ok := entry.Data["message"].(string); ok {
		entry.Message = msg
		delete(entry.Data, "message")
	} else if msg, ok := entry.Data["msg"].(string); ok {
		entry.Message = msg
		delete(entry.Data, "msg")
	}

	return entry, nil
}
