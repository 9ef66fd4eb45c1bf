package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDrawsAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Analyzing %d vertices...", 12)
	s.Start()
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Analyzing 12 vertices...") {
		t.Errorf("output %q does not show the message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("output %q should end by returning to the cleared line", out)
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Placing vertices...")
	s.Stop()
	s.Start()
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("a spinner stopped before it started wrote %q", buf.String())
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &bytes.Buffer{}, "Generating graph...")
	s.Start()
	s.Stop()
	s.Stop()
	s.StopWithSuccess("Generated %d vertices, %d edges", 4, 6)
}

func TestSpinnerEndsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, &bytes.Buffer{}, "Generating random graph...")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after its context ended")
	}
	s.StopWithError("sampling stalled")
}
