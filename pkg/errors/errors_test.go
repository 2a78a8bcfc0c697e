package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "commit %d: branch out of range", 3)

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
	}

	if err.Message != "commit 3: branch out of range" {
		t.Errorf("Message = %v, want %v", err.Message, "commit 3: branch out of range")
	}

	expected := "INVALID_CONFIG: commit 3: branch out of range"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeIO, cause, "write git_diagram.png")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "IO_ERROR: write git_diagram.png: permission denied"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidConfig, "test"),
			code:     ErrCodeInvalidConfig,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidConfig, "test"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeRenderBackend, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeRenderBackend,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeRenderBackend, "test"), ErrCodeRenderBackend},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"wrapped", Wrap(ErrCodeIO, errors.New("disk full"), "write out.png"), "write out.png: disk full"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid config", New(ErrCodeInvalidConfig, "x"), true},
		{"invalid format", New(ErrCodeInvalidFormat, "x"), true},
		{"io", New(ErrCodeIO, "x"), false},
		{"backend", New(ErrCodeRenderBackend, "x"), false},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfiguration(tt.err); got != tt.want {
				t.Errorf("IsConfiguration() = %v, want %v", got, tt.want)
			}
		})
	}
}
