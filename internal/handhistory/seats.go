package handhistory

import (
	"sort"
	"strconv"
	"strings"

	"github.com/thoas/go-funk"
)

// Player is one occupant of a seat for one hand. Position stays nil for
// players sitting out. ChipsAfterHand is derived by the chip replay.
type Player struct {
	Seat           int
	Position       *Position
	Name           string
	Chips          float64
	ChipsAfterHand float64
	IsSittingOut   bool
}

// parseSeats scans every line for the seat-declaration pattern and
// returns one Player per seat, ordered by seat number.
func parseSeats(handID, text string) ([]*Player, error) {
	var players []*Player
	seen := map[int]bool{}
	for _, line := range strings.Split(text, "\n") {
		m := seatLineRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		seat, _ := strconv.Atoi(m[1])
		chips, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, &StructuralError{HandID: handID, Field: "seat chip count"}
		}
		if seen[seat] {
			return nil, &StructuralError{HandID: handID, Field: "unique seat numbers"}
		}
		seen[seat] = true
		players = append(players, &Player{
			Seat:           seat,
			Name:           m[2],
			Chips:          chips,
			ChipsAfterHand: chips,
			IsSittingOut:   m[4] != "",
		})
	}
	if len(players) == 0 {
		return nil, &StructuralError{HandID: handID, Field: "seat declarations"}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Seat < players[j].Seat })
	return players, nil
}

// assignPositions computes each active player's relative position from
// the dealer seat. Players are ranked by a rotation key: sitting-out
// players last, active players in clockwise order starting at the
// button; the first k ranked players get labels via positionForRotation.
func assignPositions(handID string, players []*Player, dealerSeat, seatCount int) error {
	rotationKey := func(p *Player) int {
		if p.IsSittingOut {
			return seatCount + 1
		}
		return (p.Seat - dealerSeat + seatCount) % seatCount
	}

	ranked := make([]*Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return rotationKey(ranked[i]) < rotationKey(ranked[j])
	})

	active := funk.Filter(ranked, func(p *Player) bool { return !p.IsSittingOut }).([]*Player)
	k := len(active)
	if k > maxPositions {
		return &StructuralError{HandID: handID, Field: "at most nine active seats"}
	}

	for i, p := range active {
		pos := positionForRotation(i, k)
		p.Position = &pos
	}
	return nil
}
