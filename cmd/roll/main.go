// Package main provides the roll command-line tool: it parses dice notation
// arguments, rolls them, and prints the rendered results.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/cory-johannsen/dice"
	"github.com/cory-johannsen/dice/internal/config"
	"github.com/cory-johannsen/dice/internal/observability"
)

func main() {
	seedHex := flag.String("seed", "", "64 hex characters; makes rolls reproducible")
	verbose := flag.Bool("verbose", false, "log each roll at debug level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: roll [-seed <64 hex chars>] [-verbose] <expression>...\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Expressions use dice notation, e.g. d20, 2d6, 2d6+5, 4d8-2.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var seed [dice.SeedSize]byte
	seeded := *seedHex != ""
	if seeded {
		raw, err := hex.DecodeString(*seedHex)
		if err != nil || len(raw) != dice.SeedSize {
			fmt.Fprintf(os.Stderr, "roll: seed must be %d hexadecimal characters\n", dice.SeedSize*2)
			os.Exit(2)
		}
		copy(seed[:], raw)
	}

	roll := func(expr string) (dice.RollResult, error) {
		if seeded {
			return dice.RollWithSeed(expr, seed)
		}
		return dice.Roll(expr)
	}

	if *verbose {
		logger, err := observability.NewLogger(config.LoggingConfig{Level: "debug", Format: "console"})
		if err != nil {
			fmt.Fprintf(os.Stderr, "roll: initializing logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		roll = func(expr string) (dice.RollResult, error) {
			// Fresh source per expression so seeded output matches RollWithSeed.
			src := dice.NewCryptoSource()
			if seeded {
				src = dice.NewSeededSource(seed)
			}
			return dice.NewLoggedRoller(src, logger).RollExpr(expr)
		}
	}

	for _, expr := range flag.Args() {
		result, err := roll(expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "roll: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", expr, result)
	}
}
