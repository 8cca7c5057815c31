package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/vleite/wealth/cmd"
)

func main() {
	// Shell completion runs first: when invoked by the shell's completion
	// hook, Complete prints candidates and exits.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"s": predict.Nothing,
				"q": predict.Nothing,
				"t": predict.Nothing,
				"c": predict.Nothing,
			}},
			"clear": {},
			"value": {Flags: map[string]complete.Predictor{
				"r": predict.Nothing,
				"u": predict.Nothing,
			}},
			"plan": {Flags: map[string]complete.Predictor{
				"amount": predict.Nothing,
				"r":      predict.Nothing,
			}},
			"gains": {Flags: map[string]complete.Predictor{
				"r": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "quotes", "currencies", "rebalancing"}},
		},
	}
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
