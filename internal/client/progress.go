package client

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

type progress interface {
	Start()
	Stop()
}

type noProgress struct{}

func (noProgress) Start() {}
func (noProgress) Stop()  {}

// newProgress returns a spinner writing to w, or a no-op when w is not a
// terminal.
func newProgress(w io.Writer, suffix string) progress {
	f, ok := terminalFile(w)
	if !ok {
		return noProgress{}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " " + suffix
	return s
}

func isTerminal(w io.Writer) bool {
	_, ok := terminalFile(w)
	return ok
}

func terminalFile(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return nil, false
	}
	return f, isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
