// Package deck defines the card vocabulary used by the hand-history format:
// ranks 2-9, T, J, Q, K, A and suits c, d, h, s.
package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit token used in hand histories
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank token used in hand histories
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the two-character token for the card (e.g. "Ah")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

var rankTokens = map[byte]Rank{
	'2': Two, '3': Three, '4': Four, '5': Five, '6': Six, '7': Seven,
	'8': Eight, '9': Nine, 'T': Ten, 'J': Jack, 'Q': Queen, 'K': King, 'A': Ace,
}

var suitTokens = map[byte]Suit{
	'c': Clubs, 'd': Diamonds, 'h': Hearts, 's': Spades,
}

// ParseCard parses a two-character card token like "Ah" or "Td".
// Tokens outside the rank/suit vocabulary are rejected.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("invalid card token %q", token)
	}
	rank, ok := rankTokens[token[0]]
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card token %q", token)
	}
	suit, ok := suitTokens[token[1]]
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card token %q", token)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of two-character card tokens.
func ParseCards(tokens ...string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for _, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Strings renders a card slice back into its two-character tokens.
func Strings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
