package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aipokercoach/handscraper/internal/handhistory"
	"github.com/aipokercoach/handscraper/internal/segment"
)

// ParseCmd converts hand history files to JSON on stdout.
type ParseCmd struct {
	Files  []string `arg:"" name:"file" help:"Hand history files to parse" type:"existingfile"`
	Pretty bool     `help:"Indent the JSON output"`
}

func (cmd ParseCmd) Run(g *Globals) error {
	logger := setupLogger(g.Debug)

	enc := json.NewEncoder(os.Stdout)
	if cmd.Pretty {
		enc.SetIndent("", "  ")
	}

	var parsed, failed int
	for _, file := range cmd.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		for _, raw := range segment.CashHands(string(data)) {
			hand, err := handhistory.Parse(raw)
			if err != nil {
				logger.Warn("skipping unparseable hand", "file", file, "error", err)
				failed++
				continue
			}
			if err := enc.Encode(hand); err != nil {
				return fmt.Errorf("encode hand %s: %w", hand.ID, err)
			}
			parsed++
		}
	}

	logger.Debug("parse complete", "parsed", parsed, "failed", failed)
	if parsed == 0 && failed > 0 {
		return fmt.Errorf("no hands parsed (%d failed)", failed)
	}
	return nil
}
