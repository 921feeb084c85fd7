package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aipokercoach/handscraper/internal/deck"
	"github.com/aipokercoach/handscraper/internal/handhistory"
	"github.com/aipokercoach/handscraper/internal/segment"
)

// RenderCmd pretty-prints parsed hands for eyeballing a session.
type RenderCmd struct {
	File  string `arg:"" name:"file" help:"Hand history file to render" type:"existingfile"`
	Limit int    `help:"Maximum number of hands to render (0 = all)"`
}

func (cmd RenderCmd) Run(g *Globals) error {
	logger := setupLogger(g.Debug)

	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", cmd.File, err)
	}

	blocks := segment.CashHands(string(data))
	if len(blocks) == 0 {
		return fmt.Errorf("no cash hands found in %s", cmd.File)
	}

	limit := cmd.Limit
	if limit <= 0 || limit > len(blocks) {
		limit = len(blocks)
	}

	rendered := 0
	for _, raw := range blocks {
		if rendered == limit {
			break
		}
		hand, err := handhistory.Parse(raw)
		if err != nil {
			logger.Warn("skipping unparseable hand", "error", err)
			continue
		}
		renderHand(hand)
		rendered++
	}
	return nil
}

func renderHand(h *handhistory.Hand) {
	fmt.Println(headerStyle.Render(fmt.Sprintf(" Hand #%s ", h.ID)) + " " +
		handInfoStyle.Render(fmt.Sprintf("%s %s-max", h.TableName, maxLabel(h.MaxPlayers))) + " " +
		mutedStyle.Render(h.Date+" "+h.Time))

	for _, p := range h.Players {
		line := fmt.Sprintf("  %-4s seat %d  %-20s $%.2f", positionLabel(p), p.Seat, p.Name, p.Chips)
		delta := p.ChipsAfterHand - p.Chips
		switch {
		case delta > 0:
			line += winStyle.Render(fmt.Sprintf("  +$%.2f", delta))
		case delta < 0:
			line += lossStyle.Render(fmt.Sprintf("  -$%.2f", -delta))
		}
		fmt.Println(playerStyle.Render(line))
	}

	renderStreet("Preflop", append(h.PreActions, h.PreflopActions...))
	renderStreet("Flop", h.FlopActions)
	renderStreet("Turn", h.TurnActions)
	renderStreet("River", h.RiverActions)
	renderStreet("Showdown", h.ShowDownActions)

	if len(h.CommunityCards) > 0 {
		fmt.Println("  " + streetStyle.Render("Board") + "  " + renderCards(h.CommunityCards))
	}
	if len(h.HeroCards) > 0 {
		fmt.Printf("  %s (%s)  %s\n", streetStyle.Render("Hero"), h.HeroName, renderCards(h.HeroCards))
	}

	pot := fmt.Sprintf("  Pot $%.2f", h.TotalPot)
	if h.SidePot > 0 {
		pot += fmt.Sprintf(" (main $%.2f, side $%.2f", h.MainPot, h.SidePot)
		if h.SidePot2 > 0 {
			pot += fmt.Sprintf(", side2 $%.2f", h.SidePot2)
		}
		pot += ")"
	}
	pot += fmt.Sprintf(" | Rake $%.2f", h.Rake)
	fmt.Println(handInfoStyle.Render(pot))
	fmt.Println()
}

func renderStreet(name string, actions []handhistory.PlayerAction) {
	if len(actions) == 0 {
		return
	}
	fmt.Println("  " + streetStyle.Render(name))
	for _, pa := range actions {
		fmt.Printf("    %s %s\n", pa.PlayerName, describeAction(pa.Action))
	}
}

func positionLabel(p *handhistory.Player) string {
	if p.Position == nil {
		return "-"
	}
	return p.Position.String()
}

func maxLabel(n int) string {
	return fmt.Sprintf("%d", n)
}

func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		style := blackCardStyle
		if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
			style = redCardStyle
		}
		parts[i] = style.Render(c.String())
	}
	return strings.Join(parts, " ")
}

func describeAction(a handhistory.Action) string {
	switch v := a.(type) {
	case handhistory.PostSmallBlind:
		return fmt.Sprintf("posts small blind $%.2f", v.Amount)
	case handhistory.PostBigBlind:
		return fmt.Sprintf("posts big blind $%.2f", v.Amount)
	case handhistory.SitsOut:
		return "sits out"
	case handhistory.Fold:
		return "folds"
	case handhistory.Check:
		return "checks"
	case handhistory.Call:
		return fmt.Sprintf("calls $%.2f", v.Amount)
	case handhistory.Bet:
		return fmt.Sprintf("bets $%.2f", v.Amount)
	case handhistory.CallAndAllIn:
		return fmt.Sprintf("calls $%.2f, all-in", v.Amount)
	case handhistory.BetAndAllIn:
		return fmt.Sprintf("bets $%.2f, all-in", v.Amount)
	case handhistory.Raise:
		return fmt.Sprintf("raises $%.2f to $%.2f", v.Amount, v.To)
	case handhistory.RaiseAndAllIn:
		return fmt.Sprintf("raises $%.2f to $%.2f, all-in", v.Amount, v.To)
	case handhistory.Muck:
		return "mucks"
	case handhistory.Shows:
		desc := renderCards(v.Cards[:])
		if v.Desc != "" {
			desc += " (" + v.Desc + ")"
		}
		return "shows " + desc
	case handhistory.Collected:
		return winStyle.Render(fmt.Sprintf("collected $%.2f", v.Amount))
	case handhistory.CollectedFromSidePot:
		return winStyle.Render(fmt.Sprintf("collected $%.2f from side pot", v.Amount))
	case handhistory.CollectedFromMainPot:
		return winStyle.Render(fmt.Sprintf("collected $%.2f from main pot", v.Amount))
	case handhistory.CashedOut:
		if v.Fee > 0 {
			return fmt.Sprintf("cashed out $%.2f (fee $%.2f)", v.Amount, v.Fee)
		}
		return fmt.Sprintf("cashed out $%.2f", v.Amount)
	case handhistory.UncalledBet:
		return fmt.Sprintf("uncalled bet $%.2f returned", v.Amount)
	case handhistory.DoesNotShow:
		return "doesn't show"
	case handhistory.TimedOut:
		return mutedStyle.Render("timed out")
	case handhistory.Join:
		return mutedStyle.Render("joins the table")
	case handhistory.Leave:
		return mutedStyle.Render("leaves the table")
	case handhistory.Disconnected:
		return mutedStyle.Render("is disconnected")
	case handhistory.Connected:
		return mutedStyle.Render("is connected")
	default:
		return ""
	}
}
