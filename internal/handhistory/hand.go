// Package handhistory parses one plain-text hand-history block into a
// structured, serializable hand record: seating, blinds, per-street
// actions, showdown results and pot/rake accounting.
//
// Parsing is a pure, synchronous computation over an immutable text
// block. A hand either parses completely or yields an error; there is
// no partial output. The two error kinds are *StructuralError (a
// required pattern is absent) and *GrammarError (an action line matched
// no grammar rule); both are fatal for the hand and the skip-or-halt
// policy is the caller's.
package handhistory

import (
	"encoding/json"
	"fmt"

	"github.com/aipokercoach/handscraper/internal/deck"
)

// Hand is the root record for one played hand. It is constructed once by
// Parse and must be treated as read-only afterwards.
type Hand struct {
	ID         string
	Date       string
	Time       string
	TableName  string
	SmallBlind float64
	MaxPlayers int
	DealerSeat int

	HeroName  string
	HeroCards []deck.Card

	Players        []*Player
	CommunityCards []deck.Card

	PreActions      []PlayerAction
	PreflopActions  []PlayerAction
	FlopActions     []PlayerAction
	TurnActions     []PlayerAction
	RiverActions    []PlayerAction
	ShowDownActions []PlayerAction

	TotalPot float64
	MainPot  float64
	SidePot  float64
	SidePot2 float64
	Rake     float64
}

// Parse converts one hand's raw text into a Hand record. The text must
// be exactly one hand block; splitting a file into blocks and filtering
// tournament hands is the caller's job (see the segment package).
func Parse(text string) (*Hand, error) {
	hdr, err := parseHeader(text)
	if err != nil {
		return nil, err
	}
	table, err := parseTableInfo(hdr.ID, text)
	if err != nil {
		return nil, err
	}

	streets, err := parseStreets(text)
	if err != nil {
		if ge, ok := err.(*GrammarError); ok {
			ge.HandID = hdr.ID
		}
		return nil, err
	}

	players, err := parseSeats(hdr.ID, text)
	if err != nil {
		return nil, err
	}
	if err := assignPositions(hdr.ID, players, table.DealerSeat, table.MaxPlayers); err != nil {
		return nil, err
	}

	potTotals, err := parsePots(hdr.ID, text)
	if err != nil {
		return nil, err
	}
	board, err := parseBoard(hdr.ID, text)
	if err != nil {
		return nil, err
	}
	heroName, heroCards, err := parseHero(hdr.ID, text)
	if err != nil {
		return nil, err
	}

	computeChipDeltas(players, streets)

	h := &Hand{
		ID:              hdr.ID,
		Date:            hdr.Date,
		Time:            hdr.Time,
		TableName:       table.Name,
		SmallBlind:      hdr.SmallBlind,
		MaxPlayers:      table.MaxPlayers,
		DealerSeat:      table.DealerSeat,
		HeroName:        heroName,
		HeroCards:       heroCards,
		Players:         players,
		CommunityCards:  board,
		PreActions:      streets[streetPre],
		PreflopActions:  streets[streetPreflop],
		FlopActions:     streets[streetFlop],
		TurnActions:     streets[streetTurn],
		RiverActions:    streets[streetRiver],
		ShowDownActions: streets[streetShowDown],
		TotalPot:        potTotals.Total,
		MainPot:         potTotals.Main,
		SidePot:         potTotals.Side,
		SidePot2:        potTotals.Side2,
		Rake:            potTotals.Rake,
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// validate checks internal consistency of the assembled record.
func (h *Hand) validate() error {
	dealerSeated := false
	heroSeated := false
	for _, p := range h.Players {
		if p.Seat == h.DealerSeat {
			dealerSeated = true
		}
		if p.Name == h.HeroName {
			heroSeated = true
		}
	}
	if !dealerSeated {
		return &StructuralError{HandID: h.ID, Field: "dealer seat occupant"}
	}
	if !heroSeated {
		return &StructuralError{HandID: h.ID, Field: "hero seat"}
	}
	switch len(h.CommunityCards) {
	case 0, 3, 4, 5:
	default:
		return &StructuralError{HandID: h.ID, Field: "complete board"}
	}
	return nil
}

type playerWire struct {
	Seat           int     `json:"seat"`
	Position       *string `json:"position"`
	Name           string  `json:"name"`
	Chips          float64 `json:"chips"`
	ChipsAfterHand float64 `json:"chips_after_hand"`
	IsSittingOut   bool    `json:"is_sitting_out"`
}

type handWire struct {
	ID              string         `json:"id"`
	Date            string         `json:"date"`
	Time            string         `json:"time"`
	TableName       string         `json:"table_name"`
	SmallBlind      float64        `json:"small_blind"`
	MaxPlayers      int            `json:"max_players"`
	DealerSeat      int            `json:"dealer_seat"`
	Players         []playerWire   `json:"players"`
	PreActions      []PlayerAction `json:"pre_actions"`
	PreflopActions  []PlayerAction `json:"preflop_actions"`
	FlopActions     []PlayerAction `json:"flop_actions"`
	TurnActions     []PlayerAction `json:"turn_actions"`
	RiverActions    []PlayerAction `json:"river_actions"`
	ShowDownActions []PlayerAction `json:"show_down_actions"`
	HeroCards       []string       `json:"hero_cards"`
	HeroName        string         `json:"hero_name"`
	CommunityCards  []string       `json:"community_cards"`
	TotalPot        float64        `json:"total_pot"`
	MainPot         float64        `json:"main_pot"`
	SidePot         float64        `json:"side_pot"`
	SidePot2        float64        `json:"side_pot2"`
	Rake            float64        `json:"rake"`
}

func actionsOrEmpty(actions []PlayerAction) []PlayerAction {
	if actions == nil {
		return []PlayerAction{}
	}
	return actions
}

// MarshalJSON emits the canonical wire form consumed by the upload
// transport.
func (h *Hand) MarshalJSON() ([]byte, error) {
	players := make([]playerWire, len(h.Players))
	for i, p := range h.Players {
		var pos *string
		if p.Position != nil {
			label := p.Position.String()
			pos = &label
		}
		players[i] = playerWire{
			Seat:           p.Seat,
			Position:       pos,
			Name:           p.Name,
			Chips:          p.Chips,
			ChipsAfterHand: p.ChipsAfterHand,
			IsSittingOut:   p.IsSittingOut,
		}
	}

	return json.Marshal(handWire{
		ID:              h.ID,
		Date:            h.Date,
		Time:            h.Time,
		TableName:       h.TableName,
		SmallBlind:      h.SmallBlind,
		MaxPlayers:      h.MaxPlayers,
		DealerSeat:      h.DealerSeat,
		Players:         players,
		PreActions:      actionsOrEmpty(h.PreActions),
		PreflopActions:  actionsOrEmpty(h.PreflopActions),
		FlopActions:     actionsOrEmpty(h.FlopActions),
		TurnActions:     actionsOrEmpty(h.TurnActions),
		RiverActions:    actionsOrEmpty(h.RiverActions),
		ShowDownActions: actionsOrEmpty(h.ShowDownActions),
		HeroCards:       deck.Strings(h.HeroCards),
		HeroName:        h.HeroName,
		CommunityCards:  deck.Strings(h.CommunityCards),
		TotalPot:        h.TotalPot,
		MainPot:         h.MainPot,
		SidePot:         h.SidePot,
		SidePot2:        h.SidePot2,
		Rake:            h.Rake,
	})
}

// Summary returns a short one-line description, used in logs.
func (h *Hand) Summary() string {
	return fmt.Sprintf("hand %s %s %s table %q pot $%.2f", h.ID, h.Date, h.Time, h.TableName, h.TotalPot)
}
