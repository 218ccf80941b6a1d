package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	Init()
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	_, isJSON := Log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestInitFallsBackOnBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "")
	Init()
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	_, isText := Log.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestComponentTagsEntry(t *testing.T) {
	entry := Component("renderer")
	assert.Equal(t, "renderer", entry.Data["component"])
}
