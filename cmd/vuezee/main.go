package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a game in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Autoplay games with a bot and report the scores"`
	Scores   ScoresCmd        `cmd:"" help:"List the high scores"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("vuezee"),
		kong.Description("Five dice, thirteen boxes, three rolls a turn"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
