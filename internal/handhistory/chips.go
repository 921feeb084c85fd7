package handhistory

import "math"

// The chip replay derives each player's ending stack purely from their
// own action log, independent of pot bookkeeping. Blind posts and the
// preflop betting form one phase; flop, turn, river and showdown are
// replayed as separate phases because bet totals reset each street.

// phaseContribution walks one player's actions within a phase and
// returns how much they put into the pot. A raise reports its "to"
// total for the street, so it tops the accumulator up to that total
// rather than adding the increment on top of the previous raise.
func phaseContribution(name string, actions []PlayerAction) float64 {
	var put float64
	for _, pa := range actions {
		if pa.PlayerName != name {
			continue
		}
		switch a := pa.Action.(type) {
		case PostSmallBlind:
			put += a.Amount
		case PostBigBlind:
			put += a.Amount
		case Bet:
			put += a.Amount
		case Call:
			put += a.Amount
		case BetAndAllIn:
			put += a.Amount
		case CallAndAllIn:
			put += a.Amount
		case Raise:
			put = a.To
		case RaiseAndAllIn:
			put = a.To
		}
	}
	return put
}

// credits sums the amounts a phase returns to the player: pot
// collections, cash-outs and uncalled bets handed back.
func credits(name string, actions []PlayerAction) float64 {
	var won float64
	for _, pa := range actions {
		if pa.PlayerName != name {
			continue
		}
		switch a := pa.Action.(type) {
		case Collected:
			won += a.Amount
		case CollectedFromSidePot:
			won += a.Amount
		case CollectedFromMainPot:
			won += a.Amount
		case CashedOut:
			won += a.Amount
		case UncalledBet:
			won += a.Amount
		}
	}
	return won
}

// roundCents rounds half-up to the cent.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// computeChipDeltas replays the streets for every player and fills in
// ChipsAfterHand.
func computeChipDeltas(players []*Player, streets [numStreets][]PlayerAction) {
	preflop := append(append([]PlayerAction{}, streets[streetPre]...), streets[streetPreflop]...)
	phases := [][]PlayerAction{
		preflop,
		streets[streetFlop],
		streets[streetTurn],
		streets[streetRiver],
		streets[streetShowDown],
	}

	for _, p := range players {
		stack := p.Chips
		for _, phase := range phases {
			stack -= phaseContribution(p.Name, phase)
			stack += credits(p.Name, phase)
		}
		p.ChipsAfterHand = roundCents(stack)
	}
}
