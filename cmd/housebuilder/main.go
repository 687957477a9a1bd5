package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/housebuilder/cmd/housebuilder/commands"
	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/version"
)

func main() {
	var cli commands.CLI
	globals := &commands.Global{Out: os.Stdout}

	ctx := kong.Parse(&cli,
		kong.Name("housebuilder"),
		kong.Description("Build modular houses and their documentation."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(globals),
	)

	err := ctx.Run(&cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
