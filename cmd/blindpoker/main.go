package main

import (
	"flag"
	"fmt"
	"os"

	"blindpoker/internal/cli"
	"blindpoker/internal/config"
	"blindpoker/internal/rng"
	"blindpoker/internal/util"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Version is the cli version
var Version = "v0.0.0-dev"

var (
	handA   = flag.String("a", "", "player A's hand, i.e., 1,3,5,7,9")
	handB   = flag.String("b", "", "player B's hand, i.e., 1,3,5,7,7")
	batch   = flag.Bool("batch", false, "read one comparison per line from stdin")
	deal    = flag.Bool("deal", false, "deal and compare random pairs of hands")
	count   = flag.Int("n", 0, "the number of pairs to deal, defaults to deal.count")
	seed    = flag.Int64("seed", 0, "the shuffle seed used with -deal, 0 picks one")
	output  = flag.String("output", "", "the output format: text, pretty or json")
	verbose = flag.Bool("v", false, "describe both hands in text output")
	version = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println(Version)
		return
	}

	cfg := config.Instance()
	setupLogger(cfg)

	format := cfg.Output.Format
	if *output != "" {
		format = *output
	}

	printer, err := cli.NewPrinter(format, *verbose || cfg.Output.Verbose, os.Stdout)
	if err != nil {
		logrus.WithError(err).Fatal("could not create printer")
	}

	logger := logrus.WithField("run", util.NewRunID())
	runner := cli.NewRunner(logger, printer)

	switch {
	case *deal:
		n := cfg.Deal.Count
		if *count > 0 {
			n = *count
		}

		if err := runner.Deal(dealSeed(cfg), n); err != nil {
			logrus.WithError(err).Fatal("could not deal")
		}
	case *handA != "" || *handB != "":
		if *handA == "" || *handB == "" {
			logrus.Fatal("both -a and -b are required")
		}

		if _, err := runner.Compare(*handA, *handB); err != nil {
			logrus.WithError(err).Fatal("could not compare hands")
		}
	case *batch || !term.IsTerminal(int(os.Stdin.Fd())):
		if _, err := runner.Batch(os.Stdin); err != nil {
			logrus.WithError(err).Fatal("could not read batch")
		}
	default:
		if _, err := runner.Prompt(os.Stdin, os.Stdout); err != nil {
			logrus.WithError(err).Fatal("could not read hands")
		}
	}
}

// dealSeed picks the seed from the flag, then the config, then crypto/rand
func dealSeed(cfg config.Config) int64 {
	if *seed > 0 {
		return *seed
	}

	if cfg.Deal.Seed > 0 {
		return cfg.Deal.Seed
	}

	return rng.Seed(rng.Crypto{})
}

func setupLogger(cfg config.Config) {
	// results go to stdout, logs stay out of the way
	logrus.SetOutput(os.Stderr)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
