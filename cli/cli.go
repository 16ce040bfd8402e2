package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ignisVeneficus/wifiportal/config"
	"github.com/ignisVeneficus/wifiportal/db"
	"github.com/ignisVeneficus/wifiportal/db/dao"
	"github.com/ignisVeneficus/wifiportal/server"
	"github.com/rs/zerolog/log"
)

// Run executes the subcommand named by args[0]; no arguments means serve.
func Run(cfg config.Config, args []string) error {
	if len(args) == 0 {
		return runServe(cfg)
	}

	cmd := args[0]

	switch cmd {
	case "serve":
		return runServe(cfg)

	case "init-db":
		return runInitDB(cfg, args[1:])

	case "import":
		return runImport(cfg, args[1:])

	default:
		if IsHelp(args[:1]) {
			printGlobalHelp()
			return nil
		}
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// IsHelp reports whether args only ask for the command overview, which
// needs no configuration.
func IsHelp(args []string) bool {
	if len(args) != 1 {
		return false
	}
	switch args[0] {
	case "-h", "--help", "help":
		return true
	}
	return false
}

func printGlobalHelp() {
	fmt.Printf(`Usage: %s <command> [options]

Commands:
  serve       Run the portal web server (default)
  init-db     Create the database tables
  import      Load networks, nodes, users and stakeholders from a YAML file

Use "%s <command> --help" for command-specific options.
`, os.Args[0], os.Args[0])
}

func runServe(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, cfg, db.GetDatabase())
}

func runInitDB(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("init-db", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s init-db\n\n", os.Args[0])
		fmt.Fprintln(fs.Output(), "Creates the tables of the configured database if they are missing.")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := dao.CreateSchema(db.GetDatabase(), context.Background()); err != nil {
		return err
	}
	log.Logger.Info().Str("driver", string(cfg.Database.Driver)).Msg("database schema ready")
	return nil
}

func runImport(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s import [options] <file.yaml>\n\n", os.Args[0])
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}
	initSchema := fs.Bool("init", false, "create the tables before importing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("import needs exactly one file")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	ctx := context.Background()
	database := db.GetDatabase()
	if *initSchema {
		if err := dao.CreateSchema(database, ctx); err != nil {
			return err
		}
	}
	res, err := Import(ctx, database, f)
	if err != nil {
		return err
	}
	log.Logger.Info().
		Int("networks", res.Networks).
		Int("nodes", res.Nodes).
		Int("users", res.Users).
		Int("stakeholders", res.Stakeholders).
		Str("driver", string(cfg.Database.Driver)).
		Msg("import finished")
	return nil
}
