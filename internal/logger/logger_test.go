package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetInit lets a test observe Init as a freshly started process would.
func resetInit(t *testing.T) {
	t.Helper()
	initialized.Store(false)
	t.Cleanup(func() { initialized.Store(false) })
}

func TestInit(t *testing.T) {
	t.Run("OnlyOnce", func(t *testing.T) {
		resetInit(t)
		path := filepath.Join(t.TempDir(), "executor.log")

		log, err := Init(Config{Level: DefaultLevel, Output: path})
		require.NoError(t, err)
		require.NotNil(t, log)

		again, err := Init(Config{Level: DefaultLevel, Output: path})
		require.ErrorIs(t, err, ErrAlreadyInitialized)
		assert.Nil(t, again)
	})

	t.Run("FailureStillConsumesInit", func(t *testing.T) {
		resetInit(t)

		_, err := Init(Config{Level: "LOUD"})
		require.ErrorIs(t, err, ErrInvalidLevel)

		_, err = Init(Config{Level: DefaultLevel})
		require.ErrorIs(t, err, ErrAlreadyInitialized)
	})
}

func TestNew(t *testing.T) {
	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := New(Config{Level: "verbose"})
		require.ErrorIs(t, err, ErrInvalidLevel)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, err := New(Config{Level: DefaultLevel, Format: "xml"})
		require.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("UnopenableOutput", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "executor.log")

		_, err := New(Config{Level: DefaultLevel, Output: path})
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Contains(t, err.Error(), "failed to open log file")
	})

	t.Run("FileOutputAppends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "executor.log")
		require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0644))

		log, err := New(Config{Level: DefaultLevel, Format: "json", Output: path})
		require.NoError(t, err)
		log.Info("hello")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "existing", lines[0])

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
		assert.Equal(t, "hello", entry["msg"])
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("")
	require.ErrorIs(t, err, ErrInvalidLevel)
}

func TestInfoLevelFiltersDebug(t *testing.T) {
	level, err := ParseLevel(DefaultLevel)
	require.NoError(t, err)

	var buf bytes.Buffer
	log := NewWithWriter(&buf, level, "text", false)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "[INFO] info message")
	assert.Contains(t, out, "[WARN] warn message")
	assert.Contains(t, out, "[ERROR] error message")
}

func TestColorTextHandler(t *testing.T) {
	t.Run("Attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, slog.LevelInfo, "text", false)

		log.With("component", "executor").
			WithGroup("run").
			Info("started", "id", "abc", "note", "two words", "ok", true)

		out := strings.TrimSpace(buf.String())
		assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\] started`, out)
		assert.Contains(t, out, " component=executor")
		assert.Contains(t, out, " run.id=abc")
		assert.Contains(t, out, ` run.note="two words"`)
		assert.Contains(t, out, " run.ok=true")
	})

	t.Run("Color", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, slog.LevelInfo, "text", true)

		log.Warn("careful", "key", 1)

		out := buf.String()
		assert.Contains(t, out, colorYellow+"WARN"+colorReset)
		assert.Contains(t, out, colorCyan+"key"+colorReset+"=1")
	})

	t.Run("EmptyGroupIsNoop", func(t *testing.T) {
		h := NewColorTextHandler(&bytes.Buffer{}, nil, false)
		assert.Same(t, h, h.WithGroup(""))
	})
}
