package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter copies every write to all of its writers, e.g. stdout and
// the rotated log file. A broken writer never silences the others.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write reports len(p) as long as one writer took the whole message, the
// failures of the others are returned combined.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		errs      error
		delivered bool
	)
	for i, w := range cw.writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("writer %d: %w", i, err))
			continue
		}
		delivered = true
	}
	if !delivered {
		return 0, errs
	}
	return len(p), errs
}
