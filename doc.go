// SPDX-License-Identifier: MIT

// Package ntwrk is a toolkit for musical set theory and music networks:
// it classifies pitch-class sets and rhythm cells, measures minimal
// distances between them, and turns collections of them into weighted
// node/edge tables.
//
// 🚀 What is in here?
//
//	pcset/     residue sets mod m: normal order, prime form, interval
//	           vector, Forte class
//	rhythm/    rhythm cells as exact rational durations, with retrograde,
//	           rotation and augmentation
//	leading/   point metrics, minimal voice leading, rhythm distances
//	network/   node dedup, thresholded pairwise and sequential tables,
//	           parallel workers with a deterministic merge
//	matrix/    feature matrices (one row per sound) and column scaling
//	cmd/ntwrk   command line front-end writing CSV or SQLite
//
// ✨ Guarantees:
//
//   - Canonical forms never mutate their input.
//   - Given a seed, network tables are identical for any worker count.
//   - Lookup misses (Forte classes) are diagnostics, never fatal.
//
// Audio feature extraction, plotting and graph statistics live outside this
// module; tables are written in a form standard graph tools import.
package ntwrk
