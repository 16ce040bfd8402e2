package main

import (
	"os"

	"github.com/ignisVeneficus/wifiportal/cli"
	"github.com/ignisVeneficus/wifiportal/config"
	"github.com/ignisVeneficus/wifiportal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	args := os.Args[1:]
	if cli.IsHelp(args) {
		_ = cli.Run(config.Config{}, args)
		return
	}

	logging.LoadLogging()

	path := config.GetConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		log.Logger.Fatal().Err(err).Str("path", path).Msg("configuration rejected")
	}
	config.SetGlobal(cfg)

	if err := cli.Run(*cfg, args); err != nil {
		log.Logger.Fatal().Err(err).Str("command", commandName(args)).Msg("command failed")
	}
}

func commandName(args []string) string {
	if len(args) == 0 {
		return "serve"
	}
	return args[0]
}
