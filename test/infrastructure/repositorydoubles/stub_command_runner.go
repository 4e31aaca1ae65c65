//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/leaferjs/create-leafer/internal/infrastructure/repositories/npm"
)

// StubCommandRunner answers command lines from Outputs, keyed by the full
// command line, e.g. "npm show leafer version". Unknown commands fail.
type StubCommandRunner struct {
	Outputs map[string]string
	Errs    map[string]error

	mu    sync.Mutex
	calls []string
}

var _ npm.CommandRunner = (*StubCommandRunner)(nil)

func (r *StubCommandRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))

	r.mu.Lock()
	r.calls = append(r.calls, line)
	r.mu.Unlock()

	if err, ok := r.Errs[line]; ok {
		return "", err
	}
	if output, ok := r.Outputs[line]; ok {
		return output, nil
	}
	return "", fmt.Errorf("%s: command not found", line)
}

// Calls returns the command lines run so far.
func (r *StubCommandRunner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}
