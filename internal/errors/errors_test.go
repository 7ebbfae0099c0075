package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIError(t *testing.T) {
	base := stderrors.New("open failed")
	err := NewConfigError(base, "could not read config")

	assert.Equal(t, "could not read config: open failed", err.Error())
	assert.True(t, stderrors.Is(err, base))
	assert.Equal(t, ExitConfigError, Code(err))
}

func TestCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, Code(nil))
	assert.Equal(t, ExitError, Code(stderrors.New("plain")))
	assert.Equal(t, ExitUsageError, Code(NewUsageError("bad flag")))

	wrapped := Wrap(NewUsageError("bad flag"), "while parsing")
	assert.Equal(t, ExitUsageError, Code(wrapped))
}

func TestFormatError(t *testing.T) {
	err := NewError(stderrors.New("ENOENT"), "file missing")
	assert.Equal(t, "file missing", FormatError(err, false))
	assert.Contains(t, FormatError(err, true), "ENOENT")
	assert.Equal(t, "plain", FormatError(stderrors.New("plain"), true))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))
}
