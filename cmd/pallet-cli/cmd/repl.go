// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/ava-labs/palletvm/plan"
	"github.com/ava-labs/palletvm/utils"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArgs      = errors.New("wrong arguments")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

func newReplCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively call into a genesis-initialized runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := c.loadGenesis()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(g)
			if err != nil {
				return err
			}
			r := &repl{runner: runner, out: cmd.OutOrStdout()}
			return r.loop()
		},
	}
}

// replCmd is one command of the interactive shell. A fresh set is registered
// on a new parser for every line so no parsed state leaks between lines.
type replCmd interface {
	New(parser *argparse.Parser)
	Name() string
	Description() string
	Run(r *repl, line string) (bool, error)
	Happened() bool
}

func newReplCmds() []replCmd {
	return []replCmd{
		&setBalanceCmd{},
		&balanceCmd{},
		&transferCmd{},
		&incBlockCmd{},
		&blockCmd{},
		&incNonceCmd{},
		&nonceCmd{},
		&dumpCmd{},
		&helpCmd{},
		&exitCmd{},
	}
}

type repl struct {
	runner *plan.Runner
	out    io.Writer
	steps  int
}

func (r *repl) loop() error {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("block %d", r.runner.Runtime().System().BlockNumber()),
	}
	for {
		line, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		args, err := shellwords.Parse(line)
		if err != nil {
			utils.Foutf(r.out, "{{red}}%v{{/}}\n", err)
			continue
		}
		exit, err := r.exec(args)
		if err != nil {
			utils.Foutf(r.out, "{{red}}%v{{/}}\n", err)
		}
		if exit {
			return nil
		}
		prompt.Label = fmt.Sprintf("block %d", r.runner.Runtime().System().BlockNumber())
	}
}

// exec runs one tokenized command line. It reports whether the session
// should end.
func (r *repl) exec(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	parser := argparse.NewParser("pallet", "palletvm interactive shell")
	cmds := newReplCmds()
	known := false
	for _, c := range cmds {
		c.New(parser)
		known = known || c.Name() == args[0]
	}
	parser.DisableHelp()
	if !known {
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	if err := parser.Parse(append([]string{"pallet"}, args...)); err != nil {
		return false, fmt.Errorf("%w: %v", ErrWrongArgs, err)
	}
	line := strings.Join(args, " ")
	for _, c := range cmds {
		if c.Happened() {
			return c.Run(r, line)
		}
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

// apply executes [step] through the runner so the shell shares the logging
// and metrics of plan runs.
func (r *repl) apply(step *plan.Step) {
	res := r.runner.Execute(r.steps, step)
	r.steps++
	printResult(r.out, res)
}

func amount(v *int) (uint64, error) {
	if *v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeAmount, *v)
	}
	return uint64(*v), nil
}

type setBalanceCmd struct {
	cmd *argparse.Command

	account *string
	amount  *int
}

func (c *setBalanceCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
	c.account = c.cmd.String("a", "account", &argparse.Options{Required: true})
	c.amount = c.cmd.Int("n", "amount", &argparse.Options{Required: true})
}

func (*setBalanceCmd) Name() string { return "set-balance" }

func (*setBalanceCmd) Description() string { return "Overwrite the balance of --account with --amount" }

func (c *setBalanceCmd) Run(r *repl, line string) (bool, error) {
	v, err := amount(c.amount)
	if err != nil {
		return false, err
	}
	r.apply(&plan.Step{Description: line, Action: plan.SetBalance, Account: *c.account, Amount: v})
	return false, nil
}

func (c *setBalanceCmd) Happened() bool {
	return c.cmd.Happened()
}

type balanceCmd struct {
	cmd *argparse.Command

	account *string
}

func (c *balanceCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
	c.account = c.cmd.String("a", "account", &argparse.Options{Required: true})
}

func (*balanceCmd) Name() string { return "balance" }

func (*balanceCmd) Description() string { return "Print the balance of --account" }

func (c *balanceCmd) Run(r *repl, _ string) (bool, error) {
	utils.Foutf(r.out, "%d\n", r.runner.Runtime().Balances().Balance(*c.account))
	return false, nil
}

func (c *balanceCmd) Happened() bool {
	return c.cmd.Happened()
}

type transferCmd struct {
	cmd *argparse.Command

	from   *string
	to     *string
	amount *int
}

func (c *transferCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
	c.from = c.cmd.String("f", "from", &argparse.Options{Required: true})
	c.to = c.cmd.String("t", "to", &argparse.Options{Required: true})
	c.amount = c.cmd.Int("n", "amount", &argparse.Options{Required: true})
}

func (*transferCmd) Name() string { return "transfer" }

func (*transferCmd) Description() string { return "Move --amount from --from to --to" }

func (c *transferCmd) Run(r *repl, line string) (bool, error) {
	v, err := amount(c.amount)
	if err != nil {
		return false, err
	}
	r.apply(&plan.Step{Description: line, Action: plan.Transfer, Account: *c.from, To: *c.to, Amount: v})
	return false, nil
}

func (c *transferCmd) Happened() bool {
	return c.cmd.Happened()
}

type incBlockCmd struct {
	cmd *argparse.Command
}

func (c *incBlockCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
}

func (*incBlockCmd) Name() string { return "inc-block" }

func (*incBlockCmd) Description() string { return "Advance the block number by one" }

func (*incBlockCmd) Run(r *repl, line string) (bool, error) {
	r.apply(&plan.Step{Description: line, Action: plan.IncBlockNumber})
	return false, nil
}

func (c *incBlockCmd) Happened() bool {
	return c.cmd.Happened()
}

type blockCmd struct {
	cmd *argparse.Command
}

func (c *blockCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
}

func (*blockCmd) Name() string { return "block" }

func (*blockCmd) Description() string { return "Print the block number" }

func (*blockCmd) Run(r *repl, _ string) (bool, error) {
	utils.Foutf(r.out, "%d\n", r.runner.Runtime().System().BlockNumber())
	return false, nil
}

func (c *blockCmd) Happened() bool {
	return c.cmd.Happened()
}

type incNonceCmd struct {
	cmd *argparse.Command

	account *string
}

func (c *incNonceCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
	c.account = c.cmd.String("a", "account", &argparse.Options{Required: true})
}

func (*incNonceCmd) Name() string { return "inc-nonce" }

func (*incNonceCmd) Description() string { return "Increment the nonce of --account" }

func (c *incNonceCmd) Run(r *repl, line string) (bool, error) {
	r.apply(&plan.Step{Description: line, Action: plan.IncNonce, Account: *c.account})
	return false, nil
}

func (c *incNonceCmd) Happened() bool {
	return c.cmd.Happened()
}

type nonceCmd struct {
	cmd *argparse.Command

	account *string
}

func (c *nonceCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
	c.account = c.cmd.String("a", "account", &argparse.Options{Required: true})
}

func (*nonceCmd) Name() string { return "nonce" }

func (*nonceCmd) Description() string { return "Print the nonce of --account" }

func (c *nonceCmd) Run(r *repl, _ string) (bool, error) {
	utils.Foutf(r.out, "%d\n", r.runner.Runtime().System().Nonce(*c.account))
	return false, nil
}

func (c *nonceCmd) Happened() bool {
	return c.cmd.Happened()
}

type dumpCmd struct {
	cmd *argparse.Command
}

func (c *dumpCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
}

func (*dumpCmd) Name() string { return "dump" }

func (*dumpCmd) Description() string { return "Print the runtime state" }

func (*dumpCmd) Run(r *repl, _ string) (bool, error) {
	return false, printSnapshot(r.out, r.runner.Runtime().Snapshot(), false)
}

func (c *dumpCmd) Happened() bool {
	return c.cmd.Happened()
}

type helpCmd struct {
	cmd *argparse.Command
}

func (c *helpCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
}

func (*helpCmd) Name() string { return "help" }

func (*helpCmd) Description() string { return "List the commands" }

func (*helpCmd) Run(r *repl, _ string) (bool, error) {
	for _, c := range newReplCmds() {
		utils.Foutf(r.out, "  {{bold}}%-12s{{/}} %s\n", c.Name(), c.Description())
	}
	return false, nil
}

func (c *helpCmd) Happened() bool {
	return c.cmd.Happened()
}

type exitCmd struct {
	cmd *argparse.Command
}

func (c *exitCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand(c.Name(), c.Description())
}

func (*exitCmd) Name() string { return "exit" }

func (*exitCmd) Description() string { return "End the session" }

func (*exitCmd) Run(*repl, string) (bool, error) {
	return true, nil
}

func (c *exitCmd) Happened() bool {
	return c.cmd.Happened()
}
