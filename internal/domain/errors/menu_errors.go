package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// FieldError names one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned before any write is attempted when input is rejected.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Add appends a field failure.
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return ErrValidationFailed.Message() }

func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}

	return strings.Join(parts, ", ")
}

// RemoteWriteError is a product store rejection of an insert, update or delete.
type RemoteWriteError struct {
	Op         string
	StoreMsg   string
	StoreCode  string
	StoreHint  string
	underlying error
}

func NewRemoteWriteError(op string, err error, code, hint string) *RemoteWriteError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}

	return &RemoteWriteError{
		Op:         op,
		StoreMsg:   msg,
		StoreCode:  code,
		StoreHint:  hint,
		underlying: err,
	}
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("%s product failed: %s", e.Op, e.StoreMsg)
}

func (e *RemoteWriteError) Unwrap() error {
	return e.underlying
}

func (e *RemoteWriteError) HTTPCode() int     { return http.StatusBadGateway }
func (e *RemoteWriteError) ErrorCode() string { return "REMOTE_WRITE_FAILED" }
func (e *RemoteWriteError) Message() string   { return e.StoreMsg }

func (e *RemoteWriteError) Details() string {
	var parts []string
	if e.StoreCode != "" {
		parts = append(parts, "code="+e.StoreCode)
	}
	if e.StoreHint != "" {
		parts = append(parts, "hint="+e.StoreHint)
	}

	return strings.Join(parts, " ")
}

// FetchError means the product collection could not be read.
type FetchError struct {
	Timeout    bool
	underlying error
}

func NewFetchError(err error, timeout bool) *FetchError {
	return &FetchError{Timeout: timeout, underlying: err}
}

func (e *FetchError) Error() string {
	if e.Timeout {
		return "menu fetch timed out"
	}
	if e.underlying == nil {
		return "menu fetch failed"
	}

	return "menu fetch failed: " + e.underlying.Error()
}

func (e *FetchError) Unwrap() error {
	return e.underlying
}

func (e *FetchError) HTTPCode() int     { return http.StatusServiceUnavailable }
func (e *FetchError) ErrorCode() string { return "MENU_FETCH_FAILED" }
func (e *FetchError) Message() string   { return "The menu could not be loaded. Please retry." }

func (e *FetchError) Details() string {
	if e.Timeout {
		return "timeout"
	}

	return ""
}
