package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_DefaultLevel(t *testing.T) {
	log := New(false)
	if log == nil {
		t.Fatal("New returned nil")
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug enabled without verbose")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled by default")
	}
}

func TestNew_Verbose(t *testing.T) {
	log := New(true)
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose should enable debug")
	}
}
