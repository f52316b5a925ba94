package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		wantDebug bool
	}{
		{"development", true},
		{"", true},
		{"production", false},
	}
	for _, tt := range tests {
		log, err := New(tt.env, "resto")
		require.NoError(t, err)
		assert.Equal(t, tt.wantDebug, log.Core().Enabled(zapcore.DebugLevel), "env %q", tt.env)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel), "env %q", tt.env)
	}
}
