package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "venda registrada", format("venda registrada", nil))
	assert.Equal(t, "venda registrada id=t1 total=4.50", format("venda registrada", []interface{}{"id", "t1", "total", "4.50"}))
	assert.Equal(t, "x key=(MISSING)", format("x", []interface{}{"key"}))
}

func TestLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerWithWriters(LevelWarn, &out, &errOut)

	l.Debug("debug")
	l.Info("info")
	assert.Empty(t, out.String())

	l.Warn("aviso", "k", 1)
	assert.Contains(t, out.String(), "WARN: aviso k=1")
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} WARN: aviso k=1\n$`, out.String())

	l.Error("falha")
	assert.Contains(t, errOut.String(), "ERROR: falha")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}
