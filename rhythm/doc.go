// SPDX-License-Identifier: MIT

// Package rhythm models rhythm cells: ordered sequences of exact rational
// durations measured against a reference unit.
//
// A Sequence is read-only after construction. Durations are stored as
// *big.Rat and every accessor hands out copies, so callers can never alias
// the internal state.
//
// Constructors:
//
//	New(durs)             from rationals.
//	FromFloats(vals)      floats snapped to a 1/resolution grid.
//	Parse("1/4 1/8")      whitespace-separated tokens, each parsed on its own.
//
// A duration of 1 stands for Unit() whole notes (default 1). Absolute()
// multiplies through, which is the scale distance metrics compare on.
package rhythm
