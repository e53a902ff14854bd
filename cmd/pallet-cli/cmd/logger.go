// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger writes to stderr at the display level and to a rotated file in
// the log directory at the log level.
func newLogger(name string, config logging.Config) logging.Logger {
	var console io.WriteCloser = os.Stderr
	if config.DisableWriterDisplaying {
		console = discardWriteCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(config.DisplayLevel, console, config.LogFormat.ConsoleEncoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying

	file := &lumberjack.Logger{
		Filename:   filepath.Join(config.Directory, name+".log"),
		MaxSize:    config.MaxSize,  // megabytes
		MaxAge:     config.MaxAge,   // days
		MaxBackups: config.MaxFiles, // files
		Compress:   config.Compress,
	}
	fileCore := logging.NewWrappedCore(config.LogLevel, file, config.LogFormat.FileEncoder())

	return logging.NewLogger(config.LogFormat.WrapPrefix(config.MsgPrefix), consoleCore, fileCore)
}

type discardWriteCloser struct {
	io.Writer
}

func (discardWriteCloser) Close() error {
	return nil
}
