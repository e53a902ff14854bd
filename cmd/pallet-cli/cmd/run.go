// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/palletvm/genesis"
	"github.com/ava-labs/palletvm/plan"
)

func newRunCmd(c *cli) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Run a plan against a genesis-initialized runtime",
		Long:  "Run a YAML plan. Use - as the path to read the plan from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPlan(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			g, err := c.loadGenesis()
			if err != nil {
				return err
			}
			return c.runPlan(cmd.Context(), cmd.OutOrStdout(), g, p, asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the final state as YAML")
	return cmd
}

func newDemoCmd(c *cli) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration plan on a fresh runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The demo plan seeds its own balances.
			if path := c.config.GetGenesisFile(); len(path) > 0 {
				c.log.Warn("demo ignores the genesis file",
					zap.String("path", path),
				)
			}
			return c.runPlan(cmd.Context(), cmd.OutOrStdout(), nil, plan.DemoPlan(), asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the final state as YAML")
	return cmd
}

func readPlan(stdin io.Reader, path string) (*plan.Plan, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return plan.Load(b)
}

func (c *cli) runPlan(ctx context.Context, w io.Writer, g *genesis.Genesis, p *plan.Plan, asYAML bool) error {
	r, err := c.newRunner(g)
	if err != nil {
		return err
	}
	results, err := r.Run(ctx, p)
	for _, res := range results {
		printResult(w, res)
	}
	if err != nil {
		return err
	}
	return printSnapshot(w, r.Runtime().Snapshot(), asYAML)
}
