// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/palletvm/consts"
	"github.com/ava-labs/palletvm/plan"
	"github.com/ava-labs/palletvm/runtime"
)

func newTestRepl(t *testing.T) (*repl, *bytes.Buffer) {
	runner, err := plan.NewRunner(logging.NoLog{}, runtime.NewDefault(), prometheus.NewRegistry())
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &repl{runner: runner, out: out}, out
}

func TestReplSession(t *testing.T) {
	require := require.New(t)

	r, out := newTestRepl(t)
	lines := [][]string{
		{"set-balance", "--account", consts.Alice, "--amount", "100"},
		{"inc-block"},
		{"inc-nonce", "-a", consts.Alice},
		{"transfer", "--from", consts.Alice, "--to", consts.Bob, "--amount", "30"},
		{"inc-nonce", "--account", consts.Alice},
		{"transfer", "-f", consts.Alice, "-t", consts.Charlie, "-n", "20"},
	}
	for _, args := range lines {
		exit, err := r.exec(args)
		require.NoError(err)
		require.False(exit)
	}
	rt := r.runner.Runtime()
	require.Equal(uint32(1), rt.System().BlockNumber())
	require.Equal(uint32(2), rt.System().Nonce(consts.Alice))
	require.Equal(uint64(50), rt.Balances().Balance(consts.Alice))
	require.Equal(uint64(30), rt.Balances().Balance(consts.Bob))
	require.Equal(uint64(20), rt.Balances().Balance(consts.Charlie))

	out.Reset()
	_, err := r.exec([]string{"balance", "--account", consts.Alice})
	require.NoError(err)
	require.Equal("50\n", out.String())

	out.Reset()
	_, err = r.exec([]string{"nonce", "--account", consts.Bob})
	require.NoError(err)
	require.Equal("0\n", out.String())

	out.Reset()
	_, err = r.exec([]string{"block"})
	require.NoError(err)
	require.Equal("1\n", out.String())

	out.Reset()
	_, err = r.exec([]string{"dump"})
	require.NoError(err)
	require.Contains(out.String(), "{ id: alice, balance: 50, nonce: 2 }")

	exit, err := r.exec([]string{"exit"})
	require.NoError(err)
	require.True(exit)
}

func TestReplFailedTransferIsNotFatal(t *testing.T) {
	require := require.New(t)

	r, out := newTestRepl(t)
	exit, err := r.exec([]string{"transfer", "--from", consts.Alice, "--to", consts.Bob, "--amount", "1000"})
	require.NoError(err)
	require.False(exit)
	require.Contains(out.String(), plan.InsufficientBalance)
	require.Contains(out.String(), "insufficient balance")
	require.Zero(r.runner.Runtime().Balances().Balance(consts.Bob))
}

func TestReplErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{name: "unknown", args: []string{"mint", "--account", "alice"}, expectedErr: ErrUnknownCommand},
		{name: "missing flag", args: []string{"transfer", "--from", "alice"}, expectedErr: ErrWrongArgs},
		{name: "extra args", args: []string{"block", "1"}, expectedErr: ErrWrongArgs},
		{name: "not a number", args: []string{"set-balance", "--account", "alice", "--amount", "ten"}, expectedErr: ErrWrongArgs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRepl(t)
			_, err := r.exec(tt.args)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}

	r, _ := newTestRepl(t)
	_, err := r.exec([]string{"set-balance", "--account", "alice", "--amount=-5"})
	require.Error(t, err)
	require.Zero(t, r.runner.Runtime().Balances().Balance("alice"))
}

func TestReplRepeatedCommands(t *testing.T) {
	require := require.New(t)

	r, _ := newTestRepl(t)
	for i := 0; i < 3; i++ {
		_, err := r.exec([]string{"inc-nonce", "--account", consts.Bob})
		require.NoError(err)
	}
	require.Equal(uint32(3), r.runner.Runtime().System().Nonce(consts.Bob))
	require.Equal(3, r.steps)
}

func TestReplHelpListsEveryCommand(t *testing.T) {
	require := require.New(t)

	r, out := newTestRepl(t)
	_, err := r.exec([]string{"help"})
	require.NoError(err)
	for _, c := range newReplCmds() {
		require.Contains(out.String(), c.Name())
		require.Contains(out.String(), c.Description())
	}
}

func TestDemoCommand(t *testing.T) {
	require := require.New(t)

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"demo", "--yaml", "--log-dir", t.TempDir()})
	require.NoError(cmd.Execute())

	s := out.String()
	require.Contains(s, "blockNumber: 1")
	require.Contains(s, "totalIssuance: 100")
	require.Contains(s, "- id: alice\n  balance: 50\n  nonce: 2")
}

func TestRunCommand(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	genesisPath := filepath.Join(dir, "genesis.yaml")
	require.NoError(os.WriteFile(genesisPath, []byte(`
allocations:
  - account: alice
    balance: 50
initialBlock: 2
`), 0o600))
	planPath := filepath.Join(dir, "plan.yaml")
	require.NoError(os.WriteFile(planPath, []byte(`
name: overdraft
steps:
  - action: transfer
    account: alice
    to: bob
    amount: 1000
    require:
      err: insufficient_balance
      balances:
        alice: 50
        bob: 0
      blockNumber: 2
`), 0o600))

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"run", planPath, "--genesis-file", genesisPath, "--log-dir", dir})
	require.NoError(cmd.Execute())
	require.Contains(out.String(), "insufficient balance")
	require.Contains(out.String(), plan.InsufficientBalance)
	require.Contains(out.String(), "block_number: 2")
}

func TestFailedCommandClosesLogger(t *testing.T) {
	require := require.New(t)

	c := &cli{}
	cmd := newRootCmd(c)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", filepath.Join(t.TempDir(), "missing.yaml"), "--log-dir", t.TempDir()})
	require.ErrorIs(cmd.Execute(), os.ErrNotExist)
	require.Nil(c.log)
}

func TestDemoWarnsOnGenesisFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	genesisPath := filepath.Join(dir, "genesis.yaml")
	require.NoError(os.WriteFile(genesisPath, []byte("allocations: []\n"), 0o600))

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"demo", "--genesis-file", genesisPath, "--log-dir", dir})
	require.NoError(cmd.Execute())
	require.Contains(out.String(), "{ id: alice, balance: 50, nonce: 2 }")

	b, err := os.ReadFile(filepath.Join(dir, "pallet-cli.log"))
	require.NoError(err)
	require.Contains(string(b), "demo ignores the genesis file")
}

func TestGenesisCommand(t *testing.T) {
	require := require.New(t)

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"genesis", "--log-dir", t.TempDir()})
	require.NoError(cmd.Execute())
	require.Contains(out.String(), "account: alice")
	require.Contains(out.String(), "balance: 100")
}

func TestLoggerWritesFile(t *testing.T) {
	require := require.New(t)

	config := logging.Config{
		LogLevel:                logging.Info,
		DisplayLevel:            logging.Info,
		LogFormat:               logging.JSON,
		DisableWriterDisplaying: true,
	}
	config.Directory = t.TempDir()

	l := newLogger("test", config)
	l.Info("hello")
	l.Stop()

	b, err := os.ReadFile(filepath.Join(config.Directory, "test.log"))
	require.NoError(err)
	require.Contains(string(b), "hello")
}
