package handhistory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aipokercoach/handscraper/internal/deck"
)

var (
	potLineRe = regexp.MustCompile(
		`Total pot \$([0-9.]+)(?: Main pot \$([0-9.]+)\.)?(?: Side pot(?:-1)? \$([0-9.]+)\.)?(?: Side pot-2 \$([0-9.]+)\.)? \| Rake \$([0-9.]+)`)
	boardLineRe = regexp.MustCompile(`Board \[((?:[0-9TJQKA][cdhs] ?){3,5})\]`)
	dealtLineRe = regexp.MustCompile(`Dealt to (.+?) \[([0-9TJQKA][cdhs]) ([0-9TJQKA][cdhs])\]`)
)

// pots is the monetary breakdown captured from the summary line. When the
// main/side breakdown is absent the main pot legitimately defaults to the
// total pot; that is the one place a missing field gets filled in.
type pots struct {
	Total float64
	Main  float64
	Side  float64
	Side2 float64
	Rake  float64
}

func parsePots(handID, text string) (pots, error) {
	m := potLineRe.FindStringSubmatch(text)
	if m == nil {
		return pots{}, &StructuralError{HandID: handID, Field: "pot and rake summary"}
	}
	parse := func(s string) float64 {
		if s == "" {
			return 0
		}
		v, _ := strconv.ParseFloat(s, 64)
		return v
	}
	p := pots{
		Total: parse(m[1]),
		Main:  parse(m[2]),
		Side:  parse(m[3]),
		Side2: parse(m[4]),
		Rake:  parse(m[5]),
	}
	if m[2] == "" {
		p.Main = p.Total
		p.Side = 0
		p.Side2 = 0
	}
	return p, nil
}

// parseBoard captures the community cards from the summary. The board is
// required once a flop happened and must never appear without one.
func parseBoard(handID, text string) ([]deck.Card, error) {
	m := boardLineRe.FindStringSubmatch(text)
	if m == nil {
		if hasFlop(text) {
			return nil, &StructuralError{HandID: handID, Field: "board summary"}
		}
		return nil, nil
	}
	cards, err := deck.ParseCards(strings.Fields(m[1])...)
	if err != nil {
		return nil, &StructuralError{HandID: handID, Field: "valid board cards"}
	}
	return cards, nil
}

// parseHero captures the hero's name and hole cards from the "Dealt to"
// line. The client writes it exactly once per hand; zero or several is
// a corrupt block.
func parseHero(handID, text string) (string, []deck.Card, error) {
	matches := dealtLineRe.FindAllStringSubmatch(text, 2)
	if len(matches) == 0 {
		return "", nil, &StructuralError{HandID: handID, Field: "dealt hole cards"}
	}
	if len(matches) > 1 {
		return "", nil, &StructuralError{HandID: handID, Field: "single hole-card deal"}
	}
	m := matches[0]
	cards, err := deck.ParseCards(m[2], m[3])
	if err != nil {
		return "", nil, &StructuralError{HandID: handID, Field: "valid hole cards"}
	}
	return m[1], cards, nil
}
