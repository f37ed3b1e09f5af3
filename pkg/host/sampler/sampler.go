// Package sampler implements TrajectorySampler: a lazy producer of
// linearly interpolated trajectory samples at a caller-chosen rate,
// grounded in original_source/MasterCommunication/src/main.cpp's
// SamplingHandler<T> template.
package sampler

import (
	"github.com/pkg/errors"

	"github.com/mcx/dcservo/pkg/coordinate"
	"github.com/mcx/dcservo/pkg/dcerr"
)

// Producer yields the next TrajectoryItem spaced inputDt apart, and
// reports false once the underlying path is exhausted.
type Producer func() (coordinate.TrajectoryItem, bool)

// Sampler caches two neighbouring producer items and linearly
// interpolates between them as interpolT accumulates, matching
// SamplingHandler<T>'s n/np1 cached-neighbour design.
type Sampler struct {
	next    Producer
	inputDt float32

	n, np1    coordinate.TrajectoryItem
	interpolT float32

	reachedEnd bool
}

// New builds a Sampler over a producer spaced inputDt apart, played
// back at playbackSpeed. spec.md §4.5 requires playbackSpeed <= 1.0;
// values above that fail with dcerr.ErrInvalidArgument.
func New(next Producer, inputDt, playbackSpeed float32) (*Sampler, error) {
	if playbackSpeed > 1.0 {
		return nil, errors.Wrap(dcerr.ErrInvalidArgument, "sampler: playbackSpeed must be <= 1.0")
	}

	s := &Sampler{next: next, inputDt: inputDt}

	n, ok := next()
	if !ok {
		s.reachedEnd = true
		return s, nil
	}
	s.n = n

	np1, ok := next()
	if !ok {
		s.np1 = n
		s.reachedEnd = true
		return s, nil
	}
	s.np1 = np1

	return s, nil
}

// Increment advances accumulated time by dt (already scaled by
// playbackSpeed by the caller), pulling fresh producer items while
// interpolT exceeds inputDt.
func (s *Sampler) Increment(dt float32) {
	if s.reachedEnd {
		return
	}

	s.interpolT += dt
	for s.interpolT > s.inputDt {
		item, ok := s.next()
		if !ok {
			s.reachedEnd = true
			return
		}
		s.n = s.np1
		s.np1 = item
		s.interpolT -= s.inputDt
	}
}

// GetSample returns the current interpolated sample. Once the
// producer is exhausted, it holds the last sample forever.
func (s *Sampler) GetSample() coordinate.TrajectoryItem {
	if s.inputDt == 0 {
		return s.n
	}
	f := s.interpolT / s.inputDt
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return s.n.Interpolate(s.np1, f)
}

// ReachedEnd reports the one-shot end-of-trajectory flag.
func (s *Sampler) ReachedEnd() bool {
	return s.reachedEnd
}
