package handhistory

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/aipokercoach/handscraper/internal/deck"
)

// The action grammar is an ordered rule table applied top to bottom; the
// first matching rule wins. Order is load-bearing: plain bet/call/raise
// patterns are prefixes of their "and is all-in" forms, so the all-in
// rules must sit above them. A line matching no rule is fatal for the
// containing hand.

type grammarRule struct {
	re    *regexp.Regexp
	build func(m []string) (PlayerAction, error)
}

func amount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

func amountAction(build func(float64) Action) func(m []string) (PlayerAction, error) {
	return func(m []string) (PlayerAction, error) {
		v, err := amount(m[2])
		if err != nil {
			return PlayerAction{}, err
		}
		return PlayerAction{PlayerName: m[1], Action: build(v)}, nil
	}
}

func bareAction(a Action) func(m []string) (PlayerAction, error) {
	return func(m []string) (PlayerAction, error) {
		return PlayerAction{PlayerName: m[1], Action: a}, nil
	}
}

func raiseAction(build func(amt, to float64) Action) func(m []string) (PlayerAction, error) {
	return func(m []string) (PlayerAction, error) {
		amt, err := amount(m[2])
		if err != nil {
			return PlayerAction{}, err
		}
		to, err := amount(m[3])
		if err != nil {
			return PlayerAction{}, err
		}
		return PlayerAction{PlayerName: m[1], Action: build(amt, to)}, nil
	}
}

var grammarRules = []grammarRule{
	{
		re:    regexp.MustCompile(`^(.+?): posts small blind \$([0-9.]+)`),
		build: amountAction(func(v float64) Action { return PostSmallBlind{Amount: v} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?): posts big blind \$([0-9.]+)`),
		build: amountAction(func(v float64) Action { return PostBigBlind{Amount: v} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?): sits out`),
		build: bareAction(SitsOut{}),
	},
	{
		re:    regexp.MustCompile(`^(.+?): folds`),
		build: bareAction(Fold{}),
	},
	{
		re:    regexp.MustCompile(`^(.+?): checks`),
		build: bareAction(Check{}),
	},
	{
		re:    regexp.MustCompile(`^(.+?): bets \$([0-9.]+) and is all-in`),
		build: amountAction(func(v float64) Action { return BetAndAllIn{Amount: v} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?): calls \$([0-9.]+) and is all-in`),
		build: amountAction(func(v float64) Action { return CallAndAllIn{Amount: v} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?): raises \$([0-9.]+) to \$([0-9.]+) and is all-in`),
		build: raiseAction(func(amt, to float64) Action { return RaiseAndAllIn{Amount: amt, To: to} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?): bets \$([0-9.]+)`),
		build: amountAction(func(v float64) Action { return Bet{Amount: v} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?): calls \$([0-9.]+)`),
		build: amountAction(func(v float64) Action { return Call{Amount: v} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?): raises \$([0-9.]+) to \$([0-9.]+)`),
		build: raiseAction(func(amt, to float64) Action { return Raise{Amount: amt, To: to} }),
	},
	{
		re: regexp.MustCompile(`^(.+?): shows \[(\w\w) (\w\w)\] \((.+)\)$`),
		build: func(m []string) (PlayerAction, error) {
			first, err := deck.ParseCard(m[2])
			if err != nil {
				return PlayerAction{}, err
			}
			second, err := deck.ParseCard(m[3])
			if err != nil {
				return PlayerAction{}, err
			}
			return PlayerAction{
				PlayerName: m[1],
				Action:     Shows{Cards: [2]deck.Card{first, second}, Desc: m[4]},
			}, nil
		},
	},
	{
		re:    regexp.MustCompile(`^(.+?): mucks hand`),
		build: bareAction(Muck{}),
	},
	{
		re:    regexp.MustCompile(`^(.+?): doesn't show hand`),
		build: bareAction(DoesNotShow{}),
	},
	{
		re:    regexp.MustCompile(`^(.+?) collected \$([0-9.]+) from side pot`),
		build: amountAction(func(v float64) Action { return CollectedFromSidePot{Amount: v} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?) collected \$([0-9.]+) from main pot`),
		build: amountAction(func(v float64) Action { return CollectedFromMainPot{Amount: v} }),
	},
	{
		re:    regexp.MustCompile(`^(.+?) collected \$([0-9.]+) from pot`),
		build: amountAction(func(v float64) Action { return Collected{Amount: v} }),
	},
	{
		re: regexp.MustCompile(`^(.+?) cashed out the hand for \$([0-9.]+)(?: \| Cash Out Fee \$([0-9.]+))?`),
		build: func(m []string) (PlayerAction, error) {
			v, err := amount(m[2])
			if err != nil {
				return PlayerAction{}, err
			}
			fee := 0.0
			if m[3] != "" {
				if fee, err = amount(m[3]); err != nil {
					return PlayerAction{}, err
				}
			}
			return PlayerAction{PlayerName: m[1], Action: CashedOut{Amount: v, Fee: fee}}, nil
		},
	},
	{
		re:    regexp.MustCompile(`^(.+?) has timed out`),
		build: bareAction(TimedOut{}),
	},
	{
		re: regexp.MustCompile(`^Uncalled bet \(\$([0-9.]+)\) returned to (.+)$`),
		build: func(m []string) (PlayerAction, error) {
			v, err := amount(m[1])
			if err != nil {
				return PlayerAction{}, err
			}
			return PlayerAction{PlayerName: m[2], Action: UncalledBet{Amount: v}}, nil
		},
	},
	{
		re:    regexp.MustCompile(`^(.+?) joins the table`),
		build: bareAction(Join{}),
	},
	{
		re:    regexp.MustCompile(`^(.+?) leaves the table`),
		build: bareAction(Leave{}),
	},
	{
		re:    regexp.MustCompile(`^(.+?) is disconnected`),
		build: bareAction(Disconnected{}),
	},
	{
		re:    regexp.MustCompile(`^(.+?) is connected`),
		build: bareAction(Connected{}),
	},
}

// parseActionLine classifies one action line. Returns a *GrammarError
// when the line matches no rule or a matching rule rejects its payload.
func parseActionLine(line string) (PlayerAction, error) {
	for _, rule := range grammarRules {
		m := rule.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		pa, err := rule.build(m)
		if err != nil {
			return PlayerAction{}, &GrammarError{Line: line}
		}
		return pa, nil
	}
	return PlayerAction{}, &GrammarError{Line: line}
}
