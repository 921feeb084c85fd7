// Package scanner finds hand history files on disk, parses the cash
// hands inside them and hands the results to a delivery callback.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/aipokercoach/handscraper/internal/handhistory"
	"github.com/aipokercoach/handscraper/internal/segment"
)

// DeliverFunc receives each newly parsed hand. Returning an error
// aborts the scan.
type DeliverFunc func(ctx context.Context, hand *handhistory.Hand) error

// Stats summarizes one directory scan.
type Stats struct {
	Files      int
	Hands      int
	Parsed     int
	Duplicates int
	Failed     int
}

// Scanner walks hand history directories and parses what it finds.
// A scanner remembers hand IDs across scans, so repeated scans of the
// same directory only deliver new hands.
type Scanner struct {
	logger  *log.Logger
	clock   quartz.Clock
	workers int

	mu   sync.Mutex
	seen map[string]struct{}
}

// New creates a scanner with the given parse worker limit.
func New(logger *log.Logger, clock quartz.Clock, workers int) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		logger:  logger,
		clock:   clock,
		workers: workers,
		seen:    make(map[string]struct{}),
	}
}

// ScanDir parses every hand history file under dir and delivers each
// new cash hand. Hands that fail to parse are logged and counted, not
// fatal: one corrupt hand must not block the rest of a session.
func (s *Scanner) ScanDir(ctx context.Context, dir string, deliver DeliverFunc) (Stats, error) {
	files, err := s.historyFiles(dir)
	if err != nil {
		return Stats{}, err
	}

	var (
		statsMu sync.Mutex
		stats   Stats
	)
	stats.Files = len(files)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	var readErr error
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			readErr = fmt.Errorf("read %s: %w", file, err)
			break
		}

		for _, raw := range segment.CashHands(string(data)) {
			g.Go(func() error {
				hand, err := handhistory.Parse(raw)
				if err != nil {
					s.logger.Warn("skipping unparseable hand", "file", file, "error", err)
					statsMu.Lock()
					stats.Hands++
					stats.Failed++
					statsMu.Unlock()
					return nil
				}

				statsMu.Lock()
				stats.Hands++
				if s.markSeen(hand.ID) {
					stats.Duplicates++
					statsMu.Unlock()
					return nil
				}
				stats.Parsed++
				statsMu.Unlock()

				// seen must only retain delivered hands, so a failed
				// delivery is retried on the next scan
				if err := deliver(ctx, hand); err != nil {
					s.unmarkSeen(hand.ID)
					return err
				}
				return nil
			})
		}
	}

	// drain in-flight parses before reporting a file-read failure; the
	// caller must not observe deliveries after ScanDir returns
	waitErr := g.Wait()
	if readErr != nil {
		return stats, readErr
	}
	if waitErr != nil {
		return stats, waitErr
	}
	return stats, nil
}

// Watch rescans dir on a fixed interval until ctx is cancelled. The
// first scan runs immediately.
func (s *Scanner) Watch(ctx context.Context, dir string, interval time.Duration, deliver DeliverFunc) error {
	scan := func() error {
		stats, err := s.ScanDir(ctx, dir, deliver)
		if err != nil {
			return err
		}
		if stats.Parsed > 0 || stats.Failed > 0 {
			s.logger.Info("scan complete",
				"files", stats.Files,
				"new", stats.Parsed,
				"duplicates", stats.Duplicates,
				"failed", stats.Failed)
		}
		return nil
	}

	if err := scan(); err != nil {
		return err
	}

	ticker := s.clock.TickerFunc(ctx, interval, scan, "watch")
	err := ticker.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// markSeen records a hand ID, reporting whether it was already known.
func (s *Scanner) markSeen(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[id]; ok {
		return true
	}
	s.seen[id] = struct{}{}
	return false
}

// unmarkSeen forgets a hand ID whose delivery failed.
func (s *Scanner) unmarkSeen(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seen, id)
}

// historyFiles lists regular .txt files directly under dir, sorted by
// name. PokerStars writes one file per table session.
func (s *Scanner) historyFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
