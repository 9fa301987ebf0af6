// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	v := viper.New()
	c := &Config{}
	command := cobra.Command{}
	flags := &flag.FlagSet{}
	c.AddFlags(flags)
	command.PersistentFlags().AddGoFlagSet(flags)
	v.BindPFlags(command.PersistentFlags())

	err := command.ParseFlags([]string{
		"--output-format=json",
		"--dump-counts=true",
		"--quiet=true",
	})
	require.NoError(t, err)

	c.InitFromViper(v)
	assert.Equal(t, "json", c.OutputFormat)
	assert.True(t, c.DumpCounts)
	assert.True(t, c.Quiet)
}

func TestDefaultFlags(t *testing.T) {
	v := viper.New()
	c := &Config{}
	command := cobra.Command{}
	flags := &flag.FlagSet{}
	c.AddFlags(flags)
	command.PersistentFlags().AddGoFlagSet(flags)
	v.BindPFlags(command.PersistentFlags())

	c.InitFromViper(v)
	assert.Equal(t, "jsonl", c.OutputFormat)
	assert.False(t, c.DumpCounts)
	assert.False(t, c.Quiet)
}
