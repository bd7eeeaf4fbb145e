package bootstrap

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSetsLevel(t *testing.T) {
	for _, debug := range []bool{true, false} {
		var buf bytes.Buffer
		env := Init(Options{Debug: debug, Output: &buf, Quiet: true})

		require.NotNil(t, env.Logger)
		if debug {
			assert.Equal(t, logrus.DebugLevel, env.Logger.GetLevel())
			assert.True(t, env.Logger.IsLevelEnabled(logrus.DebugLevel))
		} else {
			assert.Equal(t, logrus.InfoLevel, env.Logger.GetLevel())
			assert.False(t, env.Logger.IsLevelEnabled(logrus.DebugLevel))
		}
	}
}

func TestInitWritesBanner(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Output: &buf})

	out := buf.String()
	assert.Contains(t, out, "MadMiner")
	assert.Contains(t, out, "Hi! How are you today?")
	assert.Equal(t, len(Banner()), strings.Count(out, "level=info"))
}

func TestInitQuietSkipsBanner(t *testing.T) {
	var buf bytes.Buffer
	env := Init(Options{Output: &buf, Quiet: true})
	assert.Empty(t, buf.String())

	env.Logger.Debug("hidden")
	env.Logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitTimestampedText(t *testing.T) {
	var buf bytes.Buffer
	env := Init(Options{Output: &buf, Quiet: true})
	env.Logger.Info("hello")

	assert.Regexp(t, `time="\d{2}:\d{2}" level=info msg=hello`, buf.String())
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	env := Init(Options{Output: &buf, JSON: true, Quiet: true, Debug: true})
	env.Logger.WithField("command", "true").Debug("calling command")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "calling command", entry["msg"])
	assert.Equal(t, "true", entry["command"])
	assert.Contains(t, entry, "time")
}

func TestInitFloatDisplay(t *testing.T) {
	env := Init(Options{Output: &bytes.Buffer{}, Quiet: true})
	assert.Equal(t, "0.33", env.Floats.Format(1.0/3.0))
	assert.Equal(t, "[1.00 2.00]", env.Floats.FormatSlice([]float64{1, 2}))
}

func TestInitIsolated(t *testing.T) {
	var a, b bytes.Buffer
	first := Init(Options{Output: &a, Quiet: true, Debug: true})
	second := Init(Options{Output: &b, Quiet: true})

	first.Logger.Debug("first")
	second.Logger.Debug("second")
	assert.Contains(t, a.String(), "first")
	assert.Empty(t, b.String())
}
