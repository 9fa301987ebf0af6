// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// Command creates a version command that prints build information.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Long:  `Print the version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Get()
			jsonData, err := json.Marshal(info)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
}
