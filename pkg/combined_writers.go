package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes every chunk to all of its writers, e.g. stdout and the log file.
// A failing writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: writers}
}

// Write reports len(p) once every writer took the whole chunk. Otherwise it reports the
// least any writer wrote, together with the combined errors.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	n := len(p)
	var err error
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			n = min(n, written)
		}
	}
	return n, err
}
