package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ErrOperationCancelled is returned when the user declines a prompt.
var ErrOperationCancelled = errors.New("operation cancelled")

// prompter asks line-based questions on the command's input and output.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{reader: bufio.NewReader(cmd.InOrStdin()), out: cmd.OutOrStdout()}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrOperationCancelled
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// text asks a free-form question, returning fallback on a blank answer.
func (p *prompter) text(label, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(p.out, "%s (%s) ", label, fallback)
	} else {
		fmt.Fprintf(p.out, "%s ", label)
	}
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// confirm asks a yes/no question; a blank answer means no.
func (p *prompter) confirm(label string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N] ", label)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// selectOne presents a numbered list and returns the selected index.
func (p *prompter) selectOne(label string, items []string) (int, error) {
	fmt.Fprintf(p.out, "\n%s\n", label)
	for i, item := range items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(p.out, "Enter number [1-%d]: ", len(items))

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return num - 1, nil
}

// selectMany reads a comma separated subset of items. Blank selects fallback.
func (p *prompter) selectMany(label, hint string, items, fallback []string) ([]string, error) {
	fmt.Fprintf(p.out, "\n%s\n  %s\n(%s) ", label, strings.Join(items, ", "), hint)
	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if line == "" {
		return fallback, nil
	}
	return splitList(line), nil
}

// splitList splits "a, b,,c" into its non-empty trimmed entries.
func splitList(raw string) []string {
	var result []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
