// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/btcsuite/btclog"
)

// backendLog is the logging backend used to create the subsystem logger
// below. All output goes to stdout; slicedump has no log file of its own.
var backendLog = btclog.NewBackend(os.Stdout)

// log is this command's only logger.
var log = backendLog.Logger("SDMP")

// setLogLevel parses a level name and applies it to log, returning an
// error if the name isn't recognized.
func setLogLevel(levelName string) error {
	level, ok := btclog.LevelFromString(levelName)
	if !ok {
		return errUnknownLogLevel(levelName)
	}
	log.SetLevel(level)
	return nil
}

type errUnknownLogLevel string

func (e errUnknownLogLevel) Error() string {
	return "unknown log level: " + string(e)
}
