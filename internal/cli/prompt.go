package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/graphforge/graphgen/pkg/errors"
)

// parseNonNegative parses s as a non-negative integer. Rejects empty,
// non-numeric and negative input so prompt loops can keep asking.
func parseNonNegative(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "not a number: %q", s)
	}
	if n < 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "must be non-negative, got %d", n)
	}
	return n, nil
}

// stdinIsTerminal reports whether stdin is attached to a terminal.
// Piped input gets the plain scanner prompt instead of the TUI.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// promptInt asks for one non-negative integer, re-prompting on invalid
// input. On a terminal it runs the bubbletea prompt; otherwise it falls
// back to a line scanner with the same validation.
func promptInt(label string) (int, error) {
	if stdinIsTerminal() {
		return promptIntTUI(label)
	}
	return promptIntScanner(label, os.Stdin, os.Stdout)
}

// promptIntScanner reads lines from r until one parses as a non-negative
// integer, echoing "Invalid value." for anything else.
func promptIntScanner(label string, r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "%s: ", label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read input: %w", err)
			}
			return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "no input for %s", label)
		}
		n, err := parseNonNegative(scanner.Text())
		if err != nil {
			fmt.Fprintln(w, "Invalid value.")
			continue
		}
		return n, nil
	}
}

// promptIntTUI runs the single-line numeric prompt.
func promptIntTUI(label string) (int, error) {
	p := tea.NewProgram(newIntPromptModel(label))
	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(intPromptModel)
	if !ok || m.aborted {
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "prompt for %s aborted", label)
	}
	return m.value, nil
}

// =============================================================================
// IntPromptModel - Single-line numeric input
// =============================================================================

// intPromptModel is the bubbletea model asking for one non-negative integer.
type intPromptModel struct {
	label   string
	input   string
	invalid bool
	value   int
	done    bool
	aborted bool
}

func newIntPromptModel(label string) intPromptModel {
	return intPromptModel{label: label}
}

func (m intPromptModel) Init() tea.Cmd {
	return nil
}

func (m intPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		n, err := parseNonNegative(m.input)
		if err != nil {
			m.invalid = true
			m.input = ""
			return m, nil
		}
		m.value = n
		m.done = true
		return m, tea.Quit
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if key.Type == tea.KeyRunes {
			m.input += string(key.Runes)
		}
	}
	return m, nil
}

func (m intPromptModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(m.label) + ": " + StyleValue.Render(m.input) + "█")
	if m.invalid {
		b.WriteString("\n" + StyleWarning.Render("Invalid value."))
	}
	b.WriteString("\n" + StyleDim.Render("enter confirm · esc cancel") + "\n")
	return b.String()
}
