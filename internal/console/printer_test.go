package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterLevels(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Info("fetching %s", "button")
	p.Success("wrote %d files", 2)
	p.Warn("falling back")
	p.Error("failed: %v", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"ℹ fetching button",
		"✔ wrote 2 files",
		"⚠ falling back",
		"✖ failed: boom",
	}, lines)
}

func TestPlainAndWelcome(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.Welcome("Natively")
	p.Plain("npm install %s", "clsx")

	assert.Contains(t, buf.String(), "🚀 Natively CLI")
	assert.True(t, strings.HasSuffix(buf.String(), "npm install clsx\n"))
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewLogger(&buf, false)
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	loud := NewLogger(&buf, true)
	loud.Debug("shown", "url", "https://example.com")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "url=https://example.com")
}
