package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aipokercoach/handscraper/internal/handhistory"
)

func TestDescribeAction(t *testing.T) {
	tests := []struct {
		action handhistory.Action
		want   string
	}{
		{handhistory.Fold{}, "folds"},
		{handhistory.Check{}, "checks"},
		{handhistory.Call{Amount: 2.50}, "calls $2.50"},
		{handhistory.Bet{Amount: 5}, "bets $5.00"},
		{handhistory.Raise{Amount: 10, To: 15}, "raises $10.00 to $15.00"},
		{handhistory.RaiseAndAllIn{Amount: 40, To: 55.25}, "raises $40.00 to $55.25, all-in"},
		{handhistory.PostSmallBlind{Amount: 0.25}, "posts small blind $0.25"},
		{handhistory.UncalledBet{Amount: 3}, "uncalled bet $3.00 returned"},
		{handhistory.CashedOut{Amount: 120.50, Fee: 1.21}, "cashed out $120.50 (fee $1.21)"},
		{handhistory.CashedOut{Amount: 80}, "cashed out $80.00"},
		{handhistory.DoesNotShow{}, "doesn't show"},
		{handhistory.Muck{}, "mucks"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, describeAction(tt.action))
		})
	}
}

const sampleHandText = `PokerStars Hand #510001: Hold'em No Limit ($0.25/$0.50 USD) - 2024/06/09 19:00:00 ET
Table 'Vega II' 6-max Seat #3 is the button
Seat 3: villain42 ($50.00 in chips)
Seat 6: pokerjoe ($50.00 in chips)
villain42: posts small blind $0.25
pokerjoe: posts big blind $0.50
*** HOLE CARDS ***
Dealt to pokerjoe [Qs Qc]
villain42: folds
pokerjoe collected $0.50 from pot
pokerjoe: doesn't show hand
*** SUMMARY ***
Total pot $0.50 | Rake $0.00
Seat 3: villain42 (button) (small blind) folded before Flop
Seat 6: pokerjoe (big blind) collected ($0.50)
`

func TestParseCmdRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleHandText), 0o600))

	cmd := ParseCmd{Files: []string{path}}
	assert.NoError(t, cmd.Run(&Globals{}))
}

func TestRenderCmdNoCashHands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

	cmd := RenderCmd{File: path}
	assert.Error(t, cmd.Run(&Globals{}))
}
