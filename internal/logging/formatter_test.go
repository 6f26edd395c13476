package logging

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONLogEntry(t *testing.T) {
	line := `{"timestamp":"2026-01-02T15:04:05.000Z","level":"info","message":"Calculation performed","server":"calculator","pid":1234,"operation":"add"}`

	entry, err := ParseJSONLogEntry(line)
	require.NoError(t, err)

	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Calculation performed", entry.Message)
	assert.Equal(t, "calculator", entry.Data["server"])
	assert.Equal(t, "add", entry.Data["operation"])
	assert.Equal(t, 2026, entry.Time.Year())
}

func TestParseJSONLogEntryInvalid(t *testing.T) {
	_, err := ParseJSONLogEntry("not json at all")
	assert.Error(t, err)
}

func TestParseJSONLogEntryUnknownLevel(t *testing.T) {
	entry, err := ParseJSONLogEntry(`{"level":"bogus","message":"x"}`)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
}

func TestColoredFormatterFormat(t *testing.T) {
	entry, err := ParseJSONLogEntry(`{"timestamp":"2026-01-02T15:04:05.000Z","level":"error","message":"Calculation error","server":"calculator","pid":42,"error":"division by zero"}`)
	require.NoError(t, err)

	out, err := NewColoredFormatter().Format(entry)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "ERROR")
	assert.Contains(t, text, "calculator")
	assert.Contains(t, text, ":42]")
	assert.Contains(t, text, "Calculation error")
	assert.Contains(t, text, "error=division by zero")
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestColoredFormatterStableServerColor(t *testing.T) {
	f := NewColoredFormatter()
	first := f.serverColor("someserver")
	second := f.serverColor("someserver")
	assert.Equal(t, first("x"), second("x"))
}
