// Package iostreams carries the process streams as an explicit value,
// patterned after https://github.com/cli/cli/tree/trunk/pkg/iostreams.
// The logger's stderr fallback writes to ErrOut, so tests swap the
// streams for buffers instead of capturing os.Stderr.
package iostreams

import (
	"io"
	"os"
)

type IOStreams struct {
	In     io.ReadCloser
	Out    io.Writer
	ErrOut io.Writer
}

func NewStream(stdin io.ReadCloser, stdout, stderr io.Writer) *IOStreams {
	return &IOStreams{
		In:     stdin,
		Out:    stdout,
		ErrOut: stderr,
	}
}

// System returns the streams of the current process.
func System() *IOStreams {
	return NewStream(os.Stdin, os.Stdout, os.Stderr)
}
