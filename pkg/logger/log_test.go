package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"handover-crm/pkg/config"
)

func TestNewLogger_Level(t *testing.T) {
	l := NewLogger(config.LogConfig{Level: "warn"})

	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l := NewLogger(config.LogConfig{Level: "info", File: path})
	l.Info("проверка")
	_ = l.Sync()

	assert.FileExists(t, path)
}

func TestNewLogger_UnknownLevelDefaultsToDebug(t *testing.T) {
	l := NewLogger(config.LogConfig{Level: "verbose"})

	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}
