package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fingerprint/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *logger.Logger)
		level string
		text  string
	}{
		{name: "info", log: func(l *logger.Logger) { l.Info("some message") }, level: "INFO", text: "some message"},
		{name: "warn", log: func(l *logger.Logger) { l.Warn("some warning") }, level: "WARN", text: "some warning"},
		{name: "error", log: func(l *logger.Logger) { l.Error(os.ErrPermission) }, level: "ERROR", text: "permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(logger.NewWithWriter(&buf))

			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), tt.text)
		})
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("before")
	lg.SetOutput(&second)
	lg.Info("after")

	assert.Contains(t, first.String(), "before")
	assert.NotContains(t, first.String(), "after")
	assert.Contains(t, second.String(), "after")
}

func TestNew(t *testing.T) {
	assert.NotNil(t, logger.New())
}
