// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"
)

func newGenesisCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "genesis",
		Short: "Print the genesis used to seed runtimes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := c.loadGenesis()
			if err != nil {
				return err
			}
			b, err := g.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
