package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      errors.New("failed to geocode: connection refused"),
			expected: "Error: failed to geocode: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("failed to load %s", "storage")
	if result != "Error: failed to load storage" {
		t.Errorf("Formatf() = %q", result)
	}
}

func TestKinds(t *testing.T) {
	t.Run("New tags the kind", func(t *testing.T) {
		err := New(KindValidation, "rating must be between %d and %d", 1, 10)
		if !IsKind(err, KindValidation) {
			t.Errorf("IsKind() = false for freshly tagged error")
		}
		if KindOf(err) != KindValidation {
			t.Errorf("KindOf() = %q, want %q", KindOf(err), KindValidation)
		}
		if err.Error() != "rating must be between 1 and 10" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("Wrap preserves the cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := Wrap(KindPersistence, cause)
		if !IsKind(err, KindPersistence) {
			t.Error("IsKind() = false for wrapped error")
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is lost the wrapped cause")
		}
	})

	t.Run("Wrap of nil is nil", func(t *testing.T) {
		if Wrap(KindProvider, nil) != nil {
			t.Error("Wrap(kind, nil) != nil")
		}
	})

	t.Run("untagged errors have no kind", func(t *testing.T) {
		err := errors.New("plain")
		if KindOf(err) != "" {
			t.Errorf("KindOf(plain) = %q, want empty", KindOf(err))
		}
		if IsKind(err, KindProvider) {
			t.Error("IsKind matched an untagged error")
		}
	})

	t.Run("kind survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("import failed: %w", New(KindFormat, "not an array"))
		if !IsKind(err, KindFormat) {
			t.Error("IsKind() = false after fmt.Errorf wrapping")
		}
	})
}
