package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aipokercoach/handscraper/internal/auth"
)

// LoginCmd validates a token against the server and stores it.
type LoginCmd struct {
	Token string `arg:"" help:"Access token from the web account page"`
}

func (cmd LoginCmd) Run(g *Globals) error {
	logger := setupLogger(g.Debug)

	cfg, _, err := loadConfig(g)
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.Server.RequestTimeout) * time.Second
	validator, err := auth.NewHTTPValidator(cfg.Server.URL, timeout)
	if err != nil {
		return err
	}

	identity, err := validator.Validate(context.Background(), cmd.Token)
	if errors.Is(err, auth.ErrInvalidToken) {
		return fmt.Errorf("token rejected by %s", cfg.Server.URL)
	}
	if err != nil {
		return fmt.Errorf("validate token: %w", err)
	}

	storePath, err := auth.DefaultStorePath()
	if err != nil {
		return err
	}
	if err := auth.NewStore(storePath).Save(cmd.Token); err != nil {
		return err
	}

	logger.Info("logged in", "user", identity.UserName)
	return nil
}

// LogoutCmd removes the stored token.
type LogoutCmd struct{}

func (cmd LogoutCmd) Run(g *Globals) error {
	logger := setupLogger(g.Debug)

	storePath, err := auth.DefaultStorePath()
	if err != nil {
		return err
	}
	if err := auth.NewStore(storePath).Clear(); err != nil {
		return err
	}

	logger.Info("logged out")
	return nil
}
