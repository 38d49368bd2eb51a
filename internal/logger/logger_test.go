package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l := New(path, true)
	l.Info("起動しました")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"起動しました"`)
	assert.Contains(t, string(data), `"level":"INFO"`)
}

func TestNew_ConsoleOnly(t *testing.T) {
	l := New("", false)
	assert.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel), "開発環境ではDebugを出力する")
}
