// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"

	"github.com/spf13/viper"

	"github.com/tracetools/spanbalance/internal/report"
)

const (
	outputFormat = "output-format"
	dumpCounts   = "dump-counts"
	quiet        = "quiet"
)

// Config holds the settings of the spanbalance command.
type Config struct {
	// OutputFormat selects the open-span report serialization,
	// "jsonl" or "json".
	OutputFormat string
	// DumpCounts also logs the final balance of every span identifier,
	// including closed and over-closed ones.
	DumpCounts bool
	// Quiet raises the log level so only warnings and errors are shown.
	Quiet bool
}

// AddFlags adds flags for the main program.
func (*Config) AddFlags(flags *flag.FlagSet) {
	flags.String(outputFormat, string(report.FormatJSONL),
		"Format of the open-span report: jsonl (one identifier per line) or json (a single array)")
	flags.Bool(dumpCounts, false,
		"Log the final balance of every span identifier, including balanced and over-closed ones")
	flags.Bool(quiet, false,
		"Only log warnings and errors")
}

// InitFromViper initializes the config with properties from viper.
func (c *Config) InitFromViper(v *viper.Viper) {
	c.OutputFormat = v.GetString(outputFormat)
	c.DumpCounts = v.GetBool(dumpCounts)
	c.Quiet = v.GetBool(quiet)
}
