package progress

import (
	"context"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-diamond/internal/usecase"
)

// SpinnerSink shows a spinner while a progress event asks for one
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSpinnerSink creates a spinner-based progress sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
	}
}

// OnProgress starts the spinner for spinner events and stops it otherwise
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// pause stops the spinner around a print and restarts it if it was running
func (r *SpinnerSink) pause(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	print()
	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
