// Package errors provides the classified errors reported while fetching and
// rendering catalog documents.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Transport
	ErrCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeNoConnection     ErrorCode = "NO_CONNECTION"
	ErrCodeUnexpectedStatus ErrorCode = "UNEXPECTED_STATUS"

	// Decoding
	ErrCodeInvalidDataFormat ErrorCode = "INVALID_DATA_FORMAT"

	// Mapping
	ErrCodeInvalidSettings  ErrorCode = "INVALID_SETTINGS"
	ErrCodeTariffIncomplete ErrorCode = "TARIFF_INCOMPLETE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Messages are user-facing and stay in Russian like the display labels.
const (
	MsgResourceNotFound  = "Ресурс не найден"
	MsgNoConnection      = "Нет соединения с сетью"
	MsgUnexpectedStatus  = "Неожиданный ответ сервера"
	MsgInvalidDataFormat = "Неверный формат полученных данных"
	MsgInvalidSettings   = "Неверный формат настроек"
	MsgTariffIncomplete  = "Неполное описание тарифа"
	MsgInternal          = "Непредвиденная ошибка"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Cause     error                  `json:"-"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// Is matches on the error code so the sentinels below work with errors.Is.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrResourceNotFound  = &StandardError{Code: ErrCodeResourceNotFound}
	ErrNoConnection      = &StandardError{Code: ErrCodeNoConnection}
	ErrUnexpectedStatus  = &StandardError{Code: ErrCodeUnexpectedStatus}
	ErrInvalidDataFormat = &StandardError{Code: ErrCodeInvalidDataFormat}
	ErrInvalidSettings   = &StandardError{Code: ErrCodeInvalidSettings}
	ErrTariffIncomplete  = &StandardError{Code: ErrCodeTariffIncomplete}
)

// ==========================
// 2. Error Constructors
// ==========================

// NewResourceNotFoundError is returned for HTTP statuses >= 400.
func NewResourceNotFoundError(url string, status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeResourceNotFound,
		Message:   MsgResourceNotFound,
		Details:   fmt.Sprintf("url: %s, status: %d", url, status),
		Metadata:  map[string]interface{}{"url": url, "status": status},
		Timestamp: time.Now().UTC(),
	}
}

// NewNoConnectionError wraps a transport-level failure.
func NewNoConnectionError(url string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoConnection,
		Message:   MsgNoConnection,
		Details:   fmt.Sprintf("url: %s, error: %s", url, err.Error()),
		Metadata:  map[string]interface{}{"url": url},
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

// NewUnexpectedStatusError covers every status that is neither 200 nor >= 400.
func NewUnexpectedStatusError(url string, status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnexpectedStatus,
		Message:   MsgUnexpectedStatus,
		Details:   fmt.Sprintf("url: %s, status: %d", url, status),
		Metadata:  map[string]interface{}{"url": url, "status": status},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidDataFormatError is returned when a payload is not valid JSON.
func NewInvalidDataFormatError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidDataFormat,
		Message:   MsgInvalidDataFormat,
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

// NewInvalidSettingsError reports a malformed field table entry.
func NewInvalidSettingsError(field, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidSettings,
		Message:   MsgInvalidSettings,
		Details:   fmt.Sprintf("field %s: %s", field, details),
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

// NewTariffIncompleteError reports a tariff entry that lacks a required object.
func NewTariffIncompleteError(index int, missing string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTariffIncomplete,
		Message:   MsgTariffIncomplete,
		Details:   fmt.Sprintf("entry %d: %s is missing", index, missing),
		Metadata:  map[string]interface{}{"index": index, "missing": missing},
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps a failure that is not the caller's fault, such as a
// rendered document violating the display schema.
func NewInternalError(details string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   MsgInternal,
		Details:   details,
		Timestamp: time.Now().UTC(),
		Cause:     cause,
	}
}

// ==========================
// 3. Helpers
// ==========================

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target interface{}) bool { return stderrors.As(err, target) }

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   MsgInternal,
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

// CodeOf returns the error code of err, or INTERNAL_ERROR.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	return Normalize(err).Code
}

// IsFatal reports whether err terminates the current run. Mapping problems
// only skip the offending entry.
func IsFatal(err error) bool {
	switch CodeOf(err) {
	case ErrCodeInvalidSettings, ErrCodeTariffIncomplete:
		return false
	}
	return true
}
