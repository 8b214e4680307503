package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevel(t *testing.T) {
	logger := New("test", "debug")
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("got level %v, want debug", logger.GetLevel())
	}
}

func TestNewUnknownLevelFallsBack(t *testing.T) {
	logger := New("test", "bogus")
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("got level %v, want info", logger.GetLevel())
	}
}

func TestNewEmptyLevelFallsBack(t *testing.T) {
	logger := New("test", "")
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("got level %v, want info", logger.GetLevel())
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvLevel, "warn")
	logger := New("test", "debug")
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("got level %v, want warn", logger.GetLevel())
	}
}
