package handhistory

// Position is a player's relative seating label, derived from distance
// to the dealer button.
type Position int

// The nine positions of a full-ring table, clockwise from the button.
const (
	Button Position = iota
	SmallBlind
	BigBlind
	UnderTheGun
	UnderTheGunPlus1
	UnderTheGunPlus2
	Lojack
	Hijack
	Cutoff
)

// maxPositions is the largest number of active players a table can seat
// and still have every one labeled.
const maxPositions = 9

var positionLabels = [maxPositions]string{
	"BTN",
	"SB",
	"BB",
	"UTG",
	"UTG+1",
	"UTG+2",
	"LJ",
	"HJ",
	"CO",
}

// String returns the wire label for the position
func (p Position) String() string {
	if p < 0 || int(p) >= maxPositions {
		return "?"
	}
	return positionLabels[p]
}

// positionForRotation maps a player's dealer-relative rotation index to a
// position label, given k active players. The button and both blinds are
// always labeled; past those, short-handed tables skip the labels nearest
// the blinds so the labels nearest the button survive (a 6-max table has
// LJ/HJ/CO, never UTG).
func positionForRotation(i, k int) Position {
	if i < 3 {
		return Position(i)
	}
	return Position(i + (maxPositions - k))
}
