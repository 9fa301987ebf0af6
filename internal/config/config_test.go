// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViperize(t *testing.T) {
	intFlag := "intFlag"
	stringFlag := "stringFlag"

	addFlags := func(flagSet *flag.FlagSet) {
		flagSet.Int(intFlag, 123, "")
		flagSet.String(stringFlag, "abc", "")
	}

	v, command := Viperize(addFlags)
	require.NoError(t, command.ParseFlags([]string{"--intFlag=567", "--stringFlag=xyz"}))

	assert.Equal(t, 567, v.GetInt(intFlag))
	assert.Equal(t, "xyz", v.GetString(stringFlag))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SPANBALANCE_OUTPUT_FORMAT", "json")

	v, _ := Viperize(func(flagSet *flag.FlagSet) {
		flagSet.String("output-format", "jsonl", "")
	})
	assert.Equal(t, "json", v.GetString("output-format"))
}
