package cli

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// typeString feeds each rune of s to the model as a key press.
func typeString(m intPromptModel, s string) intPromptModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(intPromptModel)
	}
	return m
}

func pressEnter(m intPromptModel) intPromptModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(intPromptModel)
}

func TestParseNonNegative(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"  7 ", 7, false},
		{"-1", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"3.5", 0, true},
		{"4 vertices", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseNonNegative(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseNonNegative(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseNonNegative(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPromptIntScanner(t *testing.T) {
	in := strings.NewReader("abc\n-3\n5\n")
	var out bytes.Buffer

	n, err := promptIntScanner("Target depth", in, &out)
	if err != nil {
		t.Fatalf("promptIntScanner() error: %v", err)
	}
	if n != 5 {
		t.Errorf("promptIntScanner() = %d, want 5", n)
	}

	// Both bad lines should have produced a re-prompt.
	if got := strings.Count(out.String(), "Invalid value."); got != 2 {
		t.Errorf("got %d invalid-value messages, want 2", got)
	}
	if got := strings.Count(out.String(), "Target depth:"); got != 3 {
		t.Errorf("got %d prompts, want 3", got)
	}
}

func TestPromptIntScannerEOF(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	if _, err := promptIntScanner("Target depth", in, &out); err == nil {
		t.Fatal("promptIntScanner() expected error on EOF")
	}
}

func TestIntPromptModel(t *testing.T) {
	m := newIntPromptModel("Target depth")

	typed := typeString(m, "12")
	entered := pressEnter(typed)
	if !entered.done || entered.value != 12 {
		t.Errorf("after entering 12: done=%v value=%d, want done=true value=12", entered.done, entered.value)
	}
}

func TestIntPromptModelInvalidReprompts(t *testing.T) {
	m := newIntPromptModel("Target depth")

	invalid := pressEnter(typeString(m, "nope"))
	if invalid.done {
		t.Fatal("model should not finish on invalid input")
	}
	if !invalid.invalid {
		t.Error("model should flag invalid input")
	}
	if invalid.input != "" {
		t.Errorf("input should reset after invalid entry, got %q", invalid.input)
	}
	if !strings.Contains(invalid.View(), "Invalid value.") {
		t.Error("view should show the invalid-value message")
	}

	valid := pressEnter(typeString(invalid, "3"))
	if !valid.done || valid.value != 3 {
		t.Errorf("after re-entering 3: done=%v value=%d, want done=true value=3", valid.done, valid.value)
	}
}
