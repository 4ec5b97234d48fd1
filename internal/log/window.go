package log

import (
	"strings"
	"sync"
)

// DefaultWindowLimit is the size at which the debug window starts over.
const DefaultWindowLimit = 400

// Window keeps the most recent log output for the on-screen debug pane.
// When the text grows past Limit characters it restarts with the newest
// message. Safe for concurrent use.
type Window struct {
	mu    sync.Mutex
	text  strings.Builder
	Limit int
}

func NewWindow(limit int) *Window {
	if limit <= 0 {
		limit = DefaultWindowLimit
	}
	return &Window{Limit: limit}
}

// Write implements io.Writer so the window can sit behind a slog handler.
func (w *Window) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.text.Len() > w.Limit {
		w.text.Reset()
	}
	w.text.Write(p)
	return len(p), nil
}

// String returns the current window contents.
func (w *Window) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.text.String()
}

// Clear empties the window.
func (w *Window) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.text.Reset()
}
