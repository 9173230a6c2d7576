// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSize    = 8 // MB
	logFileMaxBackups = 3
	logFileMaxAge     = 7 // days
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// newLogger writes human readable lines to [w] and, when [logFile] is set,
// JSON lines to a rotated file.
func newLogger(w io.Writer, level string, logFile string) (logging.Logger, io.Closer, error) {
	lvl, err := logging.ToLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	format := logging.Plain
	if f, ok := w.(*os.File); ok {
		format, err = logging.ToFormat("auto", f.Fd())
		if err != nil {
			return nil, nil, err
		}
	}
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(lvl, nopCloser{w}, format.ConsoleEncoder()),
	}

	var closer io.Closer = nopCloser{}
	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSize,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAge,
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(lvl, rotator, logging.JSON.FileEncoder()))
		closer = rotator
	}
	return logging.NewLogger("", cores...), closer, nil
}
