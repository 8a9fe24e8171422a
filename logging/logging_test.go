package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrefixesEveryChannel(t *testing.T) {
	var buf bytes.Buffer

	var logger Logger = New(&buf, "Component")

	logger.Error("first")
	logger.Info("second")
	logger.Print("third")
	logger.Warn("fourth")

	out := buf.String()

	for _, msg := range []string{"first", "second", "third", "fourth"} {
		assert.Contains(t, out, msg)
	}

	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("[Component]")))
}

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, "Initialize")

	logger.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetDebug(logger, true)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestColorsKeepMessage(t *testing.T) {
	assert.Contains(t, Red("bad name"), "bad name")
	assert.Contains(t, Yellow("careful"), "careful")
	assert.Contains(t, Cyan("note"), "note")
}
