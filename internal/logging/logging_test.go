package logging_test

import (
	"bytes"
	"testing"

	"github.com/fivetwenty-io/igdb/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAdapter_Fields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)

	adapter := logging.NewWith(l)
	adapter.Debug("API Request", map[string]interface{}{"path": "games"})
	adapter.Error("API Response Error", map[string]interface{}{"status_code": 500})

	out := buf.String()
	assert.Contains(t, out, `"msg":"API Request"`)
	assert.Contains(t, out, `"path":"games"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"status_code":500`)
}

func TestAdapter_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.WarnLevel)

	adapter := logging.NewWith(l)
	adapter.Debug("hidden", nil)
	adapter.Info("hidden", nil)
	adapter.Warn("shown", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetVerbose(t *testing.T) {
	logging.SetVerbose(true)
	assert.Equal(t, logrus.DebugLevel, logging.Logger().GetLevel())

	logging.SetVerbose(false)
	assert.Equal(t, logrus.WarnLevel, logging.Logger().GetLevel())
}
