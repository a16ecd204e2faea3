package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func forceColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = original })

	if value, ok := os.LookupEnv("NO_COLOR"); ok {
		os.Unsetenv("NO_COLOR")
		t.Cleanup(func() { os.Setenv("NO_COLOR", value) })
	}
}

func TestFormatterWithColor(t *testing.T) {
	forceColor(t)

	result := Code.Sprint("sala init")
	if strings.ContainsAny(result, "`'") {
		t.Errorf("Code.Sprint should not quote when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	forceColor(t)
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code is quoted", Code, "sala --help", "`sala --help'"},
		{"Path has no decoration", Path, "mail/work", "mail/work"},
		{"Success has no decoration", Success, "done", "done"},
		{"Error has no decoration", Error, "Error:", "Error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := Code.Sprintf("sala %s", "init")
	want := "`sala init'"
	if result != want {
		t.Errorf("Code.Sprintf() = %q, want %q", result, want)
	}
}

func TestNoColorFunction(t *testing.T) {
	forceColor(t)

	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		if !noColor() {
			t.Error("noColor() should return true when NO_COLOR is set, even if empty")
		}
	})

	t.Run("not a terminal", func(t *testing.T) {
		color.NoColor = true
		if !noColor() {
			t.Error("noColor() should return true when color.NoColor is true")
		}
	})
}
