// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrBadThreshold indicates low >= high or a non-finite bound.
	ErrBadThreshold = errors.New("network: invalid thresholds")

	// ErrBadProbability indicates a retention probability outside (0,1].
	ErrBadProbability = errors.New("network: retention probability must be in (0,1]")

	// ErrZeroDistance indicates an inverse weight requested for d == 0.
	ErrZeroDistance = errors.New("network: cannot invert zero distance")

	// ErrWorkerFailed marks a failure inside one worker's row range.
	ErrWorkerFailed = errors.New("network: worker failed")

	// ErrMergeConflict marks two partial tables disagreeing on a pair's weight.
	ErrMergeConflict = errors.New("network: merge conflict")

	// ErrNilDistance indicates a nil PairFunc.
	ErrNilDistance = errors.New("network: nil distance function")

	// ErrLengthMismatch indicates labels and data of different lengths.
	ErrLengthMismatch = errors.New("network: labels and data differ in length")
)

// Edge is one weighted connection between node ids.
type Edge struct {
	Source int
	Target int
	Weight float64
}

// Table is a built network: node labels indexed by id, and the edges.
type Table struct {
	Nodes []string
	Edges []Edge
}

// PairFunc returns the distance between two instances, given by their
// positions in the input collection.
type PairFunc func(i, j int) (float64, error)

// WeightMode selects how a kept distance becomes an edge weight.
type WeightMode int

const (
	// WeightDefault lets the builder pick: Raw for pairwise tables, Offset
	// for sequential ones.
	WeightDefault WeightMode = iota
	// WeightRaw uses d as is.
	WeightRaw
	// WeightInverse uses 1/d; d == 0 is ErrZeroDistance.
	WeightInverse
	// WeightOffset uses d + offset.
	WeightOffset
)

// WorkerError reports the failing worker and the row range it owned.
// It matches both ErrWorkerFailed and the underlying cause with errors.Is.
type WorkerError struct {
	Worker int
	Lo, Hi int
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("network: worker %d rows [%d,%d): %v", e.Worker, e.Lo, e.Hi, e.Err)
}

func (e *WorkerError) Unwrap() []error { return []error{ErrWorkerFailed, e.Err} }

// MergeError reports a pair whose partial weights disagree.
type MergeError struct {
	Source, Target int
	First, Second  float64
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("network: pair (%d,%d) has weights %g and %g", e.Source, e.Target, e.First, e.Second)
}

func (e *MergeError) Unwrap() error { return ErrMergeConflict }

// weigh turns distance d into an edge weight under mode.
func weigh(mode WeightMode, d, offset float64) (float64, error) {
	switch mode {
	case WeightInverse:
		if d == 0 {
			return 0, ErrZeroDistance
		}
		return 1 / d, nil
	case WeightOffset:
		return d + offset, nil
	default:
		return d, nil
	}
}
