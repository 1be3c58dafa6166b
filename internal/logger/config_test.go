package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_FileLogMacDinh(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "app.log", cfg.AppFile)
	assert.Equal(t, "audit.log", cfg.AuditFile)
	assert.Equal(t, "worker.log", cfg.WorkerFile)
	assert.Equal(t, "error.log", cfg.ErrorFile)
}

func TestGetLogFilePath_TheoTenLogger(t *testing.T) {
	config = DefaultConfig()

	assert.Equal(t, "app.log", filepath.Base(getLogFilePath("app")))
	assert.Equal(t, "audit.log", filepath.Base(getLogFilePath("audit")))
	assert.Equal(t, "worker.log", filepath.Base(getLogFilePath("worker")))
	assert.Equal(t, "error.log", filepath.Base(getLogFilePath("error")))
	// Tên không định nghĩa trước thì dùng <tên>.log
	assert.Equal(t, "cron.log", filepath.Base(getLogFilePath("cron")))
}
