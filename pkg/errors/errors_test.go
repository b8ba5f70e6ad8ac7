package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/iacinit/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "template_not_found",
			code:    errors.ErrTemplateNotFound,
			message: "no such template",
			wantStr: "[TEMPLATE_NOT_FOUND] no such template",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid variable",
			wantStr: "[INVALID_INPUT] invalid variable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrProjectName, "invalid project name %q", "a/b")
	if err.Message != `invalid project name "a/b"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("disk full")

	t.Run("wraps_error", func(t *testing.T) {
		err := errors.Wrap(base, errors.ErrFileWrite, "cannot write main.tf")
		if got, want := err.Error(), "[FILE_WRITE] cannot write main.tf: disk full"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !stderrors.Is(err, base) {
			t.Error("wrapped error should unwrap to base")
		}
	})

	t.Run("nil_stays_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrFileWrite, "x"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
		if err := errors.Wrapf(nil, errors.ErrFileWrite, "x %d", 1); err != nil {
			t.Errorf("Wrapf(nil) = %v, want nil", err)
		}
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Wrapf(errors.New(errors.ErrProjectExists, "exists"), errors.ErrInternal, "outer")

	if !stderrors.Is(err, errors.New(errors.ErrProjectExists, "")) {
		t.Error("errors.Is should match inner code")
	}
	if stderrors.Is(err, errors.New(errors.ErrNotFound, "")) {
		t.Error("errors.Is should not match unrelated code")
	}
}

func TestCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrCommandFailed, "git failed").WithDetail("exitCode", 128)

	if !errors.IsErrorCode(err, errors.ErrCommandFailed) {
		t.Error("IsErrorCode should report COMMAND_FAILED")
	}
	if got := errors.GetErrorCode(fmt.Errorf("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorDetails(err)["exitCode"]; got != 128 {
		t.Errorf("detail exitCode = %v, want 128", got)
	}
	if errors.GetErrorDetails(fmt.Errorf("plain")) != nil {
		t.Error("GetErrorDetails(plain) should be nil")
	}
}
