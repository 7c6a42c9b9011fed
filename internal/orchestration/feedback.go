package orchestration

import (
	"iter"
	"strings"

	"github.com/agbru/lintbubble/internal/linter"
)

const (
	// AllClear is the feedback recorded for a file the linter found no issues in.
	AllClear = "Просто ужасно"
	// InvocationFailed is the feedback recorded when the linter crashed
	// without writing anything.
	InvocationFailed = "linter invocation failed"
)

// FeedbackText converts one linter result into the text shown to the user.
//   - a clean exit yields AllClear, whatever the linter printed;
//   - a non-zero exit yields stdout verbatim plus one "\n";
//   - a crash yields the captured stdout and stderr plus "\n", or
//     InvocationFailed if nothing was captured.
func FeedbackText(res linter.CheckResult) string {
	switch {
	case res.Crashed():
		captured := res.Stdout + res.Stderr
		if strings.TrimSpace(captured) == "" {
			return InvocationFailed
		}
		return captured + "\n"
	case res.ExitCode == 0:
		return AllClear
	default:
		return res.Stdout + "\n"
	}
}

// FeedbackMap maps checked file paths to feedback text and remembers
// insertion order. It is built by a single goroutine and read after the
// build completes, so it carries no lock.
type FeedbackMap struct {
	paths   []string
	entries map[string]string
}

// NewFeedbackMap returns an empty map.
func NewFeedbackMap() *FeedbackMap {
	return &FeedbackMap{entries: make(map[string]string)}
}

// Set records text for path. Re-setting a path keeps its original position.
func (m *FeedbackMap) Set(path, text string) {
	if _, ok := m.entries[path]; !ok {
		m.paths = append(m.paths, path)
	}
	m.entries[path] = text
}

// Get returns the feedback for path.
func (m *FeedbackMap) Get(path string) (string, bool) {
	if m == nil {
		return "", false
	}
	text, ok := m.entries[path]
	return text, ok
}

// Len returns the number of entries. A nil map has length zero.
func (m *FeedbackMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.paths)
}

// Paths returns the checked paths in insertion order.
func (m *FeedbackMap) Paths() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}

// All iterates over entries in insertion order.
func (m *FeedbackMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, p := range m.paths {
			if !yield(p, m.entries[p]) {
				return
			}
		}
	}
}

// Equal reports whether two maps hold the same entries in the same order.
func (m *FeedbackMap) Equal(other *FeedbackMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, p := range m.Paths() {
		if other.paths[i] != p || other.entries[p] != m.entries[p] {
			return false
		}
	}
	return true
}
