package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinnerStyle  = lipgloss.NewStyle().Foreground(colorCyan)
)

const spinnerInterval = 80 * time.Millisecond

// spinner animates a one-line status on w while a long computation runs.
// The animation ends when Stop is called or ctx is done. Stop may be called
// any number of times, with or without a prior Start.
type spinner struct {
	ctx     context.Context
	w       io.Writer
	message string

	mu      sync.Mutex
	started bool
	halted  bool
	once    sync.Once
	done    chan struct{}
	stopped chan struct{}
}

func newSpinner(ctx context.Context, w io.Writer, format string, args ...any) *spinner {
	return &spinner{
		ctx:     ctx,
		w:       w,
		message: fmt.Sprintf(format, args...),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the animation. A stopped spinner stays stopped.
func (s *spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.halted {
		return
	}
	s.started = true
	go s.run()
}

func (s *spinner) run() {
	defer close(s.stopped)
	t := time.NewTicker(spinnerInterval)
	defer t.Stop()
	for i := 0; ; i++ {
		s.draw(spinnerFrames[i%len(spinnerFrames)])
		select {
		case <-s.ctx.Done():
			s.clear()
			return
		case <-s.done:
			return
		case <-t.C:
		}
	}
}

func (s *spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", spinnerStyle.Render(frame), styleDim.Render(s.message))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", lipgloss.Width(s.message)+2))
}

// Stop ends the animation and erases the status line.
func (s *spinner) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		s.halted = true
		started := s.started
		s.mu.Unlock()

		close(s.done)
		if started {
			<-s.stopped
			s.clear()
		}
	})
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	printSuccess(format, args...)
}

// StopWithError stops the spinner and prints a failure line.
func (s *spinner) StopWithError(format string, args ...any) {
	s.Stop()
	printError(format, args...)
}
