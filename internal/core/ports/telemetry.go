package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of long running work.
type Telemetry interface {
	// Record starts a new vertex named name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// SetOutput renders progress recorded from now on to w. A nil w stops it.
	SetOutput(w io.Writer)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a unit of recorded work.
type Vertex interface {
	// Stdout returns a writer for progress output of the vertex.
	Stdout() io.Writer
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as served from cache.
	Cached()
}
