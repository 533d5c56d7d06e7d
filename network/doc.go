// SPDX-License-Identifier: MIT

// Package network turns collections of pitch-class sets, rhythm cells or
// feature vectors into weighted node/edge tables.
//
// 🚀 What is in here?
//
//	Nodes              ordered label dedup table (first-seen order).
//	BuildPairwise      every unordered node pair, kept when low < d < high,
//	                   optionally thinned with probability p.
//	BuildSequential    one edge per consecutive pair of instances.
//	Front-ends         PitchLeadingNetwork, PrimeFormNetwork, RhythmNetwork,
//	                   TimbralNetwork, OrchestralNetwork.
//
// ⚙️ Workers:
//
//	BuildPairwise splits the node rows into contiguous ranges and scans each
//	range in its own goroutine (errgroup). Every worker fills a private
//	partial table; after Wait the partials are merged, pairs are put in
//	(min,max) order and exact duplicates are dropped. Two copies of a pair
//	with different weights fail the build with a *MergeError.
//
// 🎲 Determinism:
//
//	The retention draw for a pair depends only on the run seed and the pair
//	itself, never on the worker count or on which direction scanned it.
//	WithSeed(0) maps to a fixed default seed; WithTimeSeed opts into a
//	clock-derived one.
//
// Edges carry node ids; Table.Nodes[id] is the label.
package network
