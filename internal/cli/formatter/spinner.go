package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// spinnerFrames cycle a pulse along three dots.
var spinnerFrames = []string{"●∙∙", "∙●∙", "∙∙●", "∙●∙"}

// slowExchange is how long an exchange may run before the spinner starts
// showing elapsed time next to the message.
const slowExchange = 2 * time.Second

// Spinner is a single-line activity indicator shown while an exchange with
// the planning service is outstanding. It writes to stderr so stdout stays
// pipeable, and only animates on a terminal; piped runs get the message
// printed once instead.
type Spinner struct {
	w       io.Writer
	animate bool
	message string
	started time.Time

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewSpinner creates a spinner for the given exchange message.
func NewSpinner(message string) *Spinner {
	return newSpinner(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()), message)
}

func newSpinner(w io.Writer, animate bool, message string) *Spinner {
	return &Spinner{
		w:       w,
		animate: animate,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// line renders one animation frame, with elapsed time once the exchange
// runs long.
func (s *Spinner) line(i int, elapsed time.Duration) string {
	frame := StylePurple.Render(spinnerFrames[i%len(spinnerFrames)])
	out := fmt.Sprintf("\r  %s %s", frame, Dim(s.message))
	if elapsed >= slowExchange {
		out += Dim(fmt.Sprintf(" %.0fs", elapsed.Seconds()))
	}
	return out
}

// Start begins the animation. On a non-terminal it prints the message once
// and returns.
func (s *Spinner) Start() {
	s.started = time.Now()
	if !s.animate {
		fmt.Fprintf(s.w, "  %s\n", Dim(s.message))
		close(s.done)
		return
	}
	go func() {
		defer close(s.done)
		i := 0
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				// Clear the line so command output starts clean.
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-ticker.C:
				fmt.Fprint(s.w, s.line(i, time.Since(s.started)))
				i++
			}
		}
	}()
}

// Stop ends the animation and clears the line. Safe to call more than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
}

// StartSpinner creates and starts a spinner for an exchange. Call the
// returned function once the exchange settles.
func StartSpinner(message string) func() {
	s := NewSpinner(message)
	s.Start()
	return s.Stop
}
