// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"
	"time"
)

// MonotonicVersionSource issues envelope versions that strictly increase for
// the lifetime of the process, regardless of what the wall clock does.
//
// Versions start from the current time in milliseconds since epoch, which
// keeps them loosely comparable across devices, but the generator never
// repeats or decreases a value: a clock retreat simply advances the counter
// by one instead. Callers that reseal a vault derived from two replicas use
// NextAfter to guarantee the new version exceeds both inputs.
type MonotonicVersionSource struct {
	mu   sync.Mutex
	last int64

	// now is swappable for tests.
	now func() time.Time
}

// NewMonotonicVersionSource constructs a version source backed by the
// system clock.
func NewMonotonicVersionSource() *MonotonicVersionSource {
	return &MonotonicVersionSource{now: time.Now}
}

// Next returns a version strictly greater than every version this source
// has returned before.
func (s *MonotonicVersionSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.next(0)
}

// NextAfter returns a version strictly greater than both the floor and
// every version this source has returned before.
func (s *MonotonicVersionSource) NextAfter(floor int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.next(floor)
}

func (s *MonotonicVersionSource) next(floor int64) int64 {
	v := s.now().UnixMilli()
	if v <= s.last {
		v = s.last + 1
	}
	if v <= floor {
		v = floor + 1
	}
	s.last = v

	return v
}
