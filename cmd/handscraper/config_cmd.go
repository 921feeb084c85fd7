package main

import (
	"fmt"
	"os"

	"github.com/aipokercoach/handscraper/internal/config"
)

// ConfigCmd groups configuration utilities.
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Print the active configuration"`
	Init ConfigInitCmd `cmd:"" help:"Write a default configuration file"`
}

// ConfigShowCmd prints where settings come from and what they are.
type ConfigShowCmd struct{}

func (cmd ConfigShowCmd) Run(g *Globals) error {
	cfg, path, err := loadConfig(g)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("# %s (not found, showing defaults)\n", path)
	} else {
		fmt.Printf("# %s\n", path)
	}
	fmt.Printf("hand_history_dir      = %q\n", cfg.Scraper.HandHistoryDir)
	fmt.Printf("poll_interval_seconds = %d\n", cfg.Scraper.PollIntervalSeconds)
	fmt.Printf("workers               = %d\n", cfg.Scraper.Workers)
	fmt.Printf("server_url            = %q\n", cfg.Server.URL)
	fmt.Printf("request_timeout       = %d\n", cfg.Server.RequestTimeout)
	fmt.Printf("log_level             = %q\n", cfg.Logging.Level)
	return nil
}

// ConfigInitCmd writes the defaults so the user has a file to edit.
type ConfigInitCmd struct {
	Dir   string `help:"Hand history directory to record in the new file" type:"existingdir"`
	Force bool   `help:"Overwrite an existing config file"`
}

func (cmd ConfigInitCmd) Run(g *Globals) error {
	logger := setupLogger(g.Debug)

	path := g.Config
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !cmd.Force {
		return fmt.Errorf("%s already exists; pass --force to overwrite", path)
	}

	cfg := config.Default()
	cfg.Scraper.HandHistoryDir = cmd.Dir
	if err := cfg.Save(path); err != nil {
		return err
	}

	logger.Info("wrote config", "path", path)
	return nil
}
