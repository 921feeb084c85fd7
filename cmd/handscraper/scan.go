package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/aipokercoach/handscraper/internal/auth"
	"github.com/aipokercoach/handscraper/internal/config"
	"github.com/aipokercoach/handscraper/internal/handhistory"
	"github.com/aipokercoach/handscraper/internal/scanner"
	"github.com/aipokercoach/handscraper/internal/uploader"
)

// ScanCmd runs one pass over the hand history directory and uploads
// everything new.
type ScanCmd struct {
	Dir string `help:"Hand history directory (overrides config)" type:"existingdir"`
}

func (cmd ScanCmd) Run(g *Globals) error {
	logger := setupLogger(g.Debug)

	cfg, dir, client, err := prepareUpload(g, cmd.Dir)
	if err != nil {
		return err
	}

	s := scanner.New(logger, quartz.NewReal(), cfg.Scraper.Workers)
	stats, err := s.ScanDir(context.Background(), dir, uploadDeliver(logger, client))
	if err != nil {
		return err
	}

	logger.Info("scan complete",
		"files", stats.Files,
		"uploaded", stats.Parsed,
		"duplicates", stats.Duplicates,
		"failed", stats.Failed)
	return nil
}

// WatchCmd keeps scanning the hand history directory until interrupted.
type WatchCmd struct {
	Dir      string        `help:"Hand history directory (overrides config)" type:"existingdir"`
	Interval time.Duration `help:"Poll interval (overrides config)"`
}

func (cmd WatchCmd) Run(g *Globals) error {
	logger := setupLogger(g.Debug)

	cfg, dir, client, err := prepareUpload(g, cmd.Dir)
	if err != nil {
		return err
	}

	interval := cmd.Interval
	if interval == 0 {
		interval = time.Duration(cfg.Scraper.PollIntervalSeconds) * time.Second
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for hands", "dir", dir, "interval", interval)
	s := scanner.New(logger, quartz.NewReal(), cfg.Scraper.Workers)
	return s.Watch(ctx, dir, interval, uploadDeliver(logger, client))
}

// prepareUpload resolves config, the directory to scan and an
// authenticated upload client.
func prepareUpload(g *Globals, dirOverride string) (*config.Config, string, *uploader.Client, error) {
	cfg, path, err := loadConfig(g)
	if err != nil {
		return nil, "", nil, err
	}

	dir := dirOverride
	if dir == "" {
		dir = cfg.Scraper.HandHistoryDir
	}
	if dir == "" {
		return nil, "", nil, fmt.Errorf("no hand history directory configured; set scraper.hand_history_dir in %s or pass --dir", path)
	}

	token, err := loadToken()
	if err != nil {
		return nil, "", nil, err
	}

	timeout := time.Duration(cfg.Server.RequestTimeout) * time.Second
	client, err := uploader.New(cfg.Server.URL, token, timeout)
	if err != nil {
		return nil, "", nil, err
	}
	return cfg, dir, client, nil
}

func loadToken() (string, error) {
	storePath, err := auth.DefaultStorePath()
	if err != nil {
		return "", err
	}
	token, err := auth.NewStore(storePath).Load()
	if errors.Is(err, auth.ErrNoToken) {
		return "", fmt.Errorf("not logged in; run 'handscraper login <token>' first")
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func uploadDeliver(logger *log.Logger, client *uploader.Client) scanner.DeliverFunc {
	return func(ctx context.Context, hand *handhistory.Hand) error {
		duplicate, err := client.Upload(ctx, hand)
		if err != nil {
			return fmt.Errorf("upload %s: %w", hand.Summary(), err)
		}
		if duplicate {
			logger.Debug("server already had hand", "id", hand.ID)
			return nil
		}
		logger.Info("uploaded", "id", hand.ID, "table", hand.TableName, "pot", hand.TotalPot)
		return nil
	}
}
