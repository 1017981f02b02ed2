// Package runlog persists tsp.RunRecord values: one ';'-separated CSV file per
// problem label, and an SQLite run table for querying across runs.
package runlog

import (
	"context"
	"errors"

	"github.com/katalvlaran/ilstsp/tsp"
)

// Sink receives one record per completed run.
type Sink interface {
	Write(ctx context.Context, rec tsp.RunRecord) error
}

// Multi fans a record out to every sink. All sinks are attempted; their
// errors are joined.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Write(ctx context.Context, rec tsp.RunRecord) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Write(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
