// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

type config struct {
	InFile string `short:"i" long:"infile" description:"File containing the raw hex or binary entity to parse" required:"true"`
	Hex    bool   `long:"hex" description:"Treat the input file as hex text instead of raw binary"`
	Kind   string `short:"k" long:"kind" description:"Entity kind: tx, block, or header" default:"tx"`
	ShowTx bool   `short:"t" long:"showtx" description:"When kind is block, also print each transaction's txid"`
	Debug  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"info"`
}

func loadConfig() (*config, error) {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	switch cfg.Kind {
	case "tx", "block", "header":
	default:
		return nil, fmt.Errorf("unknown entity kind %q, expected tx, block, or header", cfg.Kind)
	}

	return &cfg, nil
}
