package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
	fields   []map[string]interface{}
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func TestSentinels_MatchByCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewResourceNotFoundError("http://x", 404), ErrResourceNotFound},
		{"no connection", NewNoConnectionError("http://x", stderrors.New("dial tcp")), ErrNoConnection},
		{"unexpected status", NewUnexpectedStatusError("http://x", 302), ErrUnexpectedStatus},
		{"invalid data", NewInvalidDataFormatError(stderrors.New("eof")), ErrInvalidDataFormat},
		{"settings", NewInvalidSettingsError("Type", "label is empty"), ErrInvalidSettings},
		{"tariff", NewTariffIncompleteError(2, "Parent"), ErrTariffIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, tt.sentinel))
			wrapped := fmt.Errorf("start: %w", tt.err)
			assert.True(t, Is(wrapped, tt.sentinel))
			assert.False(t, Is(tt.err, &StandardError{Code: "OTHER"}))
		})
	}
}

func TestNoConnectionError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewNoConnectionError("http://catalog", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, MsgNoConnection, err.Message)
	assert.Contains(t, err.Error(), "NO_CONNECTION")
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))

	plain := Normalize(stderrors.New("kaboom"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "kaboom", plain.Details)

	original := NewResourceNotFoundError("u", 500)
	assert.Same(t, original, Normalize(fmt.Errorf("wrap: %w", original)))
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(NewResourceNotFoundError("u", 404)))
	assert.True(t, IsFatal(NewInvalidDataFormatError(stderrors.New("x"))))
	assert.True(t, IsFatal(stderrors.New("x")))
	assert.False(t, IsFatal(NewInvalidSettingsError("Type", "no label")))
	assert.False(t, IsFatal(NewTariffIncompleteError(0, "Tariff")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestReporter_Report(t *testing.T) {
	log := &recordingLogger{}
	var observed []ErrorCode
	reporter := NewReporter(log).WithObserver(func(code ErrorCode) {
		observed = append(observed, code)
	})

	reporter.Report(nil)
	reporter.Report(NewResourceNotFoundError("http://catalog/1", 404))
	reporter.Report(NewInvalidSettingsError("Type", "label is empty"))

	require.Len(t, log.messages, 2)
	assert.Equal(t, "Ошибка: Ресурс не найден", log.messages[0])
	assert.Equal(t, "RESOURCE_NOT_FOUND", log.fields[0]["errorCode"])
	assert.Equal(t, 404, log.fields[0]["status"])
	assert.Equal(t, true, log.fields[0]["fatal"])

	assert.Equal(t, "Ошибка: Неверный формат настроек", log.messages[1])
	assert.Equal(t, false, log.fields[1]["fatal"])

	assert.Equal(t, []ErrorCode{ErrCodeResourceNotFound, ErrCodeInvalidSettings}, observed)
}

func TestNewInternalError(t *testing.T) {
	cause := stderrors.New("schema")
	err := NewInternalError("document invalid", cause)

	assert.Equal(t, ErrCodeInternal, CodeOf(err))
	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "document invalid")
}
