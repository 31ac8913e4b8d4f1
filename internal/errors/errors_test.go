package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestExportErrorFormatting(t *testing.T) {
	plain := New(ConfigMissing, "missing SHEET_ID", nil)
	if got := plain.Error(); got != "[CONFIG_MISSING] missing SHEET_ID" {
		t.Errorf("Error() = %q", got)
	}

	cause := stderrors.New("boom")
	wrapped := New(AuthFailed, "cannot load credentials", cause)
	if !strings.Contains(wrapped.Error(), "AUTH_FAILED") || !strings.Contains(wrapped.Error(), "boom") {
		t.Errorf("Error() = %q, want code and cause", wrapped.Error())
	}
	if stderrors.Unwrap(wrapped) != cause {
		t.Error("Unwrap() should return the cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "taxonomy error", err: New(TabNotFound, "no such tab", nil), want: TabNotFound},
		{name: "foreign error", err: stderrors.New("anything"), want: InternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
			if !IsCode(tt.err, tt.want) {
				t.Errorf("IsCode(%v) = false", tt.want)
			}
		})
	}
}

func TestWithDetails(t *testing.T) {
	err := New(SchemaMismatch, "missing columns", nil).
		WithDetails(map[string]interface{}{"missing": []string{"price"}})
	if err.Details == nil {
		t.Error("WithDetails() should attach details")
	}
}
