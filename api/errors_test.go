// File: api/errors_test.go
// Author: momentics <momentics@gmail.com>

package api

import (
	"strings"
	"testing"
)

func TestStructuredError(t *testing.T) {
	err := NewError(ErrCodeInvalidArgument, "bad deadline")
	if err.Error() != "bad deadline" {
		t.Fatalf("Error() = %q", err.Error())
	}

	err = err.WithContext("deadline", -5)
	msg := err.Error()
	if !strings.Contains(msg, "bad deadline") || !strings.Contains(msg, "deadline") {
		t.Fatalf("contextual Error() = %q", msg)
	}
	if err.Code != ErrCodeInvalidArgument {
		t.Fatalf("Code = %v", err.Code)
	}
}

func TestWithContextOnZeroValue(t *testing.T) {
	err := (&Error{Code: ErrCodeInternal, Message: "boom"}).WithContext("task", 3)
	if err.Context["task"] != 3 {
		t.Fatal("WithContext did not allocate the context map")
	}
}
