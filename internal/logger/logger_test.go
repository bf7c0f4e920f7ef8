package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		enabled zap.AtomicLevel
		wantErr bool
	}{
		{name: "debug", level: "debug", enabled: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{name: "warn", level: "warn", enabled: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{name: "unknown", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled.Level()))
			assert.Equal(t, tt.level == "debug", l.Core().Enabled(zap.DebugLevel))
		})
	}
}
