package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "fetched season",
			fields:  Fields{"year": 2024},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "write failed",
			err:     errors.New("disk full"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			assert.Equal(t, tt.want, buf.Len() > 0)
		})
	}
}

func TestLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("write failed", Fields{"path": "/tmp/out.json"}, errors.New("disk full"))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "write failed", entry.Message)
	assert.Equal(t, "disk full", entry.Error)
	assert.Equal(t, "/tmp/out.json", entry.Fields["path"])
	_, err := time.Parse(time.RFC3339, entry.Timestamp)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"info doesn't log at warn", LevelWarn, LevelInfo, false},
		{"error always logs", LevelWarn, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(tt.minLevel, &buf).log(tt.logLevel, "test", nil, nil)
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" debug ")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, level)

	_, err = ParseLevel("trace")
	assert.Error(t, err)
}

func TestSetDefault(t *testing.T) {
	previous := Default()
	t.Cleanup(func() { SetDefault(previous) })

	var buf bytes.Buffer
	SetDefault(New(LevelDebug, &buf))

	Debug("debug", nil)
	Info("info", Fields{"key": "value"})
	Warn("warn", nil)
	Error("error", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("games.parsed")
	m.IncrCounter("games.parsed")
	m.AddCounter("games.parsed", 3)

	assert.Equal(t, int64(5), m.Counter("games.parsed"))

	counters := m.Snapshot()["counters"].(map[string]int64)
	assert.Equal(t, int64(5), counters["games.parsed"])
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("fetch", 100*time.Millisecond)
	m.RecordTiming("fetch", 200*time.Millisecond)
	m.RecordTiming("fetch", 150*time.Millisecond)

	timings := m.Snapshot()["timings"].(map[string]map[string]interface{})
	fetch := timings["fetch"]

	assert.Equal(t, 3, fetch["count"])
	assert.Equal(t, "450ms", fetch["total"])
	assert.Equal(t, "200ms", fetch["max"])
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("x")
	m.RecordTiming("y", time.Second)

	m.Reset()

	assert.Equal(t, int64(0), m.Counter("x"))
	assert.Empty(t, m.Snapshot()["timings"])
}

func TestPackageLevelMetrics(t *testing.T) {
	before := DefaultMetrics().Counter("test.pkg")

	IncrCounter("test.pkg")
	AddCounter("test.pkg", 2)
	RecordTiming("test.pkg", time.Millisecond)

	assert.Equal(t, before+3, DefaultMetrics().Counter("test.pkg"))
}
