package errors

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCode(t *testing.T) {
	base := ConfigInvalid("temperature must be positive")
	wrapped := Wrap(base, "failed to build energy options")

	assert.Equal(t, CodeConfigInvalid, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "failed to build energy options")
	assert.Contains(t, wrapped.Error(), "temperature must be positive")
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(stderrors.New("boom"), "context")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestConfigInvalidf_PreservesCause(t *testing.T) {
	sentinel := stderrors.New("missing setting")
	err := ConfigInvalidf(sentinel, "field %s", "temperature")

	assert.True(t, stderrors.Is(err, sentinel))
	assert.True(t, HasCode(err, CodeConfigInvalid))
	assert.Equal(t, "field temperature: missing setting", err.Error())
}

func TestGetCode_Unknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestCancelled_KeepsContextError(t *testing.T) {
	err := Wrap(Cancelled(context.DeadlineExceeded, "tally cancelled"), "request failed")

	assert.Equal(t, CodeCancelled, GetCode(err))
	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))
}
