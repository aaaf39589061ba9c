package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFileName(t *testing.T) {
	now := time.Date(2024, 4, 1, 9, 15, 30, 0, time.UTC)

	assert.Equal(t, "prod_2024-04-01_09-15-30.log", logFileName("prod", now))
	assert.Equal(t, "rota_2024-04-01_09-15-30.log", logFileName("", now))
}

func TestInitLogger_WritesJSONFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger("test", logDir)
	require.NoError(t, err)

	logger.Debug("debug only goes to file")
	_ = logger.Sync()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"debug only goes to file"`)
	assert.Contains(t, string(content), `"timestamp"`)
}
