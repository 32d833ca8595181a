package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad number: %d", -2)
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %q, want INVALID_INPUT", err.Code)
	}
	if !strings.Contains(err.Error(), "bad number: -2") {
		t.Errorf("Error() = %q, missing message", err.Error())
	}
	if !strings.Contains(err.Error(), "INVALID_INPUT") {
		t.Errorf("Error() = %q, missing code", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeCache, cause, "writing count")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost from the chain")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidTarget, "no")
	if !Is(err, ErrCodeInvalidTarget) {
		t.Error("Is should match own code")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInvalidTarget) {
		t.Error("Is should not match a plain error")
	}

	// Matches through wrapping layers
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeInvalidTarget) {
		t.Error("Is should unwrap")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want NOT_FOUND", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "numbers must be positive")
	if got := UserMessage(err); got != "numbers must be positive" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
