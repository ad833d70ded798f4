package models

import (
	"testing"
)

func TestCompareStatus_ExitCode(t *testing.T) {
	tests := []struct {
		status CompareStatus
		want   int
	}{
		{StatusIdentical, 0},
		{StatusDiffers, 1},
		{StatusFailed, 2},
		{CompareStatus("bogus"), 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "output.format", Message: "must be 'human' or 'json'"}

	want := "output.format: must be 'human' or 'json'"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
