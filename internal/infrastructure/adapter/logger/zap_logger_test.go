package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLoggerWritesJSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	log := NewZapLogger(Options{
		Production: true,
		Level:      "info",
		Format:     "json",
		Output:     logPath,
	})

	log.Debug("hidden", nil)
	log.With(map[string]any{"component": "test"}).Info("receipt stored", map[string]any{"receiptId": 3})
	require.NoError(t, log.Flush())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `"message":"receipt stored"`)
	assert.Contains(t, content, `"component":"test"`)
	assert.Contains(t, content, `"receiptId":3`)
	assert.NotContains(t, content, "hidden")
}

func TestZapLoggerSetLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	log := NewZapLogger(Options{Production: true, Level: "error", Output: logPath})
	assert.Equal(t, core.LogLevelError, log.GetLevel())

	log.Info("before", nil)
	log.SetLevel(core.LogLevelDebug)
	log.Debug("after", nil)
	require.NoError(t, log.Flush())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "before")
	assert.Contains(t, string(data), "after")
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}
