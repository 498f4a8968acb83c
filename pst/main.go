package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Harshitvit/codealpha-tasks/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests, and installs itself when run
// with COMP_INSTALL=1. It is a no-op in a normal run.
func completion() {
	trade := map[string]complete.Predictor{
		"s": predict.Something,
		"q": predict.Something,
		"p": predict.Something,
	}
	amount := map[string]complete.Predictor{"a": predict.Something}

	c := &complete.Command{
		Flags: map[string]complete.Predictor{"portfolio-file": predict.Files("*.json")},
		Sub: map[string]*complete.Command{
			"deposit":  {Flags: amount},
			"withdraw": {Flags: amount},
			"buy":      {Flags: trade},
			"sell":     {Flags: trade},
			"holdings": {},
			"tx": {Flags: map[string]complete.Predictor{
				"head": predict.Something,
				"tail": predict.Something,
			}},
			"chart":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.png")}},
			"assist": {},
		},
	}
	c.Complete("pst")
}
