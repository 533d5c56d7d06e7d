// SPDX-License-Identifier: MIT

package config

// Config is the on-disk configuration. Every section has a default, so an
// empty file is valid.
type Config struct {
	PCS      PCSConfig      `yaml:"pcs"`
	Distance DistanceConfig `yaml:"distance"`
	Network  NetworkConfig  `yaml:"network"`
	Rhythm   RhythmConfig   `yaml:"rhythm"`
	Output   OutputConfig   `yaml:"output"`
}

// PCSConfig configures residue sets.
type PCSConfig struct {
	Modulus int `yaml:"modulus" validate:"gt=0"`
}

// DistanceConfig selects the metric used by voice-leading and feature distances.
type DistanceConfig struct {
	Metric string `yaml:"metric" validate:"oneof=euclidean sqeuclidean cityblock chebyshev dtw"`
}

// NetworkConfig mirrors the network builder options.
type NetworkConfig struct {
	Low         float64 `yaml:"low"`
	High        float64 `yaml:"high" validate:"gtfield=Low"`
	Probability float64 `yaml:"probability" validate:"gt=0,lte=1"`
	Seed        int64   `yaml:"seed"`
	TimeSeed    bool    `yaml:"time_seed"`
	Workers     int     `yaml:"workers" validate:"gte=1"`
	Weight      string  `yaml:"weight" validate:"omitempty,oneof=raw inverse offset"`
	Offset      float64 `yaml:"offset" validate:"gte=0"`
	FullScan    bool    `yaml:"full_scan"`
}

// RhythmConfig configures rhythm cell parsing.
type RhythmConfig struct {
	// Unit is the absolute length of a duration of 1, as a rational ("1", "1/4").
	Unit       string `yaml:"unit" validate:"required"`
	Resolution int64  `yaml:"resolution" validate:"gt=0"`
}

// Output format names.
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// OutputConfig selects where tables are written.
type OutputConfig struct {
	Format     string `yaml:"format" validate:"oneof=csv sqlite"`
	Dir        string `yaml:"dir" validate:"required"`
	SQLitePath string `yaml:"sqlite_path" validate:"required_if=Format sqlite"`
}
