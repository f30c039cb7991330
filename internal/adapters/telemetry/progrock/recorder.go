// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"
	"go.trai.ch/exsd/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	w   *fanout
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	f := &fanout{tape: w}
	return &Recorder{
		w:   f,
		rec: progrock.NewRecorder(f),
	}
}

// Record starts recording a new vertex. Names are expected to be unique per
// recording, since the vertex digest is derived from the name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// SetOutput renders every later update as console lines on w.
func (r *Recorder) SetOutput(w io.Writer) {
	r.w.setConsole(w)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}

// fanout copies status updates from the recorder to the tape and to an
// optional console rendering.
type fanout struct {
	tape progrock.Writer

	mu      sync.Mutex
	console progrock.Writer
}

func (f *fanout) setConsole(w io.Writer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w == nil {
		f.console = nil
		return
	}
	f.console = console.NewWriter(w)
}

func (f *fanout) WriteStatus(update *progrock.StatusUpdate) error {
	if err := f.tape.WriteStatus(update); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.console == nil {
		return nil
	}
	return f.console.WriteStatus(update)
}

func (f *fanout) Close() error {
	f.mu.Lock()
	if f.console != nil {
		_ = f.console.Close()
	}
	f.mu.Unlock()
	return f.tape.Close()
}
