// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/palletvm/config"
	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/genesis"
	"github.com/ava-labs/palletvm/plan"
	"github.com/ava-labs/palletvm/runtime"
)

type cli struct {
	configFile  string
	logLevel    string
	logDir      string
	genesisFile string

	config   *config.Config
	log      logging.Logger
	registry *prometheus.Registry
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&cli{})
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:        "pallet-cli",
		Short:      "PalletVM CLI",
		SuggestFor: []string{"pallet-cli", "palletcli"},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}

	cobra.EnablePrefixMatching = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.PersistentFlags().StringVar(&c.configFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level written to the log file")
	cmd.PersistentFlags().StringVar(&c.logDir, "log-dir", "", "log directory")
	cmd.PersistentFlags().StringVar(&c.genesisFile, "genesis-file", "", "genesis file path")

	cmd.AddCommand(
		newDemoCmd(c),
		newRunCmd(c),
		newReplCmd(c),
		newGenesisCmd(c),
	)
	// PersistentPostRun is skipped when RunE fails, so the logger is closed
	// by each subcommand instead.
	for _, sub := range cmd.Commands() {
		run := sub.RunE
		if run == nil {
			continue
		}
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			defer c.close()
			return run(cmd, args)
		}
	}
	return cmd
}

func (c *cli) init(cmd *cobra.Command) error {
	var (
		b   []byte
		err error
	)
	if len(c.configFile) > 0 {
		b, err = os.ReadFile(c.configFile)
		if err != nil {
			return err
		}
	}
	c.config, err = config.Load(b)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.config.LogLevel = c.logLevel
	}
	if flags.Changed("log-dir") {
		c.config.LogDirectory = c.logDir
	}
	if flags.Changed("genesis-file") {
		c.config.GenesisFile = c.genesisFile
	}
	if err := c.config.Verify(); err != nil {
		return err
	}

	c.log = newLogger("pallet-cli", c.config.GetLoggingConfig())
	c.registry = prometheus.NewRegistry()

	c.log.Info("pallet-cli initialized",
		zap.String("version", consts.Version),
		zap.String("log-level", c.config.LogLevel),
		zap.String("log-dir", c.config.LogDirectory),
	)
	return nil
}

func (c *cli) close() {
	if c.log != nil {
		c.log.Stop()
		c.log = nil
	}
}

func (c *cli) loadGenesis() (*genesis.Genesis, error) {
	path := c.config.GetGenesisFile()
	if len(path) == 0 {
		return genesis.Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return genesis.Load(b)
}

// newRunner creates a runtime, seeds it with [g] if not nil, and wraps it in a
// plan runner.
func (c *cli) newRunner(g *genesis.Genesis) (*plan.Runner, error) {
	rt := runtime.NewDefault()
	if g != nil {
		if err := g.Initialize(rt); err != nil {
			return nil, err
		}
		c.log.Info("genesis initialized",
			zap.Int("allocations", len(g.Allocations)),
			zap.Uint64("supply", g.Supply()),
			zap.Uint32("blockNumber", rt.System().BlockNumber()),
		)
	}
	return plan.NewRunner(c.log, rt, c.registry)
}
