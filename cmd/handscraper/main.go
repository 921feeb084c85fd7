package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/aipokercoach/handscraper/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Config string `help:"Path to config file" type:"path"`
	Debug  bool   `help:"Enable debug logging"`
}

type CLI struct {
	Globals
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Parse  ParseCmd  `cmd:"" help:"Parse hand history files and print one JSON record per hand"`
	Scan   ScanCmd   `cmd:"" help:"Scan the hand history directory and upload new hands"`
	Watch  WatchCmd  `cmd:"" help:"Watch the hand history directory and upload hands as they appear"`
	Render RenderCmd `cmd:"" help:"Pretty-print the hands in a history file"`
	Login  LoginCmd  `cmd:"" help:"Validate and store an access token"`
	Logout LogoutCmd `cmd:"" help:"Remove the stored access token"`
	Config ConfigCmd `cmd:"" help:"Inspect or initialize the configuration file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handscraper"),
		kong.Description("Parses PokerStars hand histories and uploads them for analysis"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func setupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the config path and loads it. The path comes back
// too so commands can report where settings came from.
func loadConfig(g *Globals) (*config.Config, string, error) {
	path := g.Config
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, path, nil
}
