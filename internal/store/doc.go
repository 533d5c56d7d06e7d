// SPDX-License-Identifier: MIT

// Package store persists network tables and reads the input collections the
// CLI works on.
//
// Sinks:
//
//	CSVSink     nodes.csv (Label) and edges.csv (Source,Target,Weight)
//	SQLiteSink  runs, nodes and edges tables keyed by a run UUID
//
// Readers:
//
//	ReadRhythmDictionary  label,cell rows ("1/4 1/8 1/8")
//	ReadFeatures          label,f1,f2,... rows into a matrix.Dense
//	ReadVectors           one integer vector per line
package store
