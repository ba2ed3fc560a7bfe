package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBindOptions(t *testing.T) {
	var (
		host     string
		count    int
		orgID    int64
		verbose  bool
		interval time.Duration
		level    zapcore.Level
	)

	program := &Program{
		Name: "testprog",
		Opts: []Opt{
			NewOpt(&host, "host", "localhost:9443", "host to talk to"),
			NewOpt(&count, "count", 3, "how many"),
			NewOpt(&orgID, "org-id", int64(7), "organization id"),
			NewOpt(&verbose, "verbose", false, "chatty output"),
			NewOpt(&interval, "interval", 5*time.Minute, "sweep interval"),
			NewOpt(&level, "log-level", zapcore.WarnLevel, "minimum log level"),
		},
		Run: func() error { return nil },
	}

	cmd := NewCommand(program)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "localhost:9443", host)
	assert.Equal(t, 3, count)
	assert.Equal(t, int64(7), orgID)
	assert.False(t, verbose)
	assert.Equal(t, 5*time.Minute, interval)
	assert.Equal(t, zapcore.WarnLevel, level)
}

func TestBindOptionsFlagsOverrideDefaults(t *testing.T) {
	var (
		host     string
		interval time.Duration
		level    zapcore.Level
	)

	program := &Program{
		Name: "testprog",
		Opts: []Opt{
			NewOpt(&host, "host", "localhost:9443", "host to talk to"),
			NewOpt(&interval, "interval", 5*time.Minute, "sweep interval"),
			NewOpt(&level, "log-level", zapcore.InfoLevel, "minimum log level"),
		},
		Run: func() error { return nil },
	}

	cmd := NewCommand(program)
	cmd.SetArgs([]string{
		"--host=grafana:3000",
		"--interval=30s",
		"--log-level=debug",
	})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "grafana:3000", host)
	assert.Equal(t, 30*time.Second, interval)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestBindOptionsEnvVars(t *testing.T) {
	t.Setenv("ENVPROG_HOST", "orc8r:9443")

	var host string
	program := &Program{
		Name: "envprog",
		Opts: []Opt{
			NewOpt(&host, "host", "localhost", "host to talk to"),
		},
		Run: func() error { return nil },
	}

	cmd := NewCommand(program)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "orc8r:9443", host)
}

func TestBindOptionsRejectsBadLevel(t *testing.T) {
	var level zapcore.Level
	program := &Program{
		Name: "testprog",
		Opts: []Opt{
			NewOpt(&level, "log-level", zapcore.InfoLevel, "minimum log level"),
		},
		Run: func() error { return nil },
	}

	cmd := NewCommand(program)
	cmd.SetArgs([]string{"--log-level=shouting"})
	require.Error(t, cmd.Execute())
}
