package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrittenToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "catalog.log")
	require.NoError(t, InitLogger(Config{Level: "info", OutputPath: path, MaxSize: 1}))

	Debug("below level", String("step", "user"))
	Error("命令执行失败", ErrorField(errors.New("dial tcp: connection refused")), Int("attempt", 1))
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"error"`)
	assert.Contains(t, string(data), "connection refused")
	assert.NotContains(t, string(data), "below level")
}
