package handhistory

import "testing"

func act(name string, a Action) PlayerAction {
	return PlayerAction{PlayerName: name, Action: a}
}

func TestChipDeltaBlindReturned(t *testing.T) {
	// Posting $1 and collecting $1 in the same phase must round-trip to
	// the exact starting stack.
	p := &Player{Seat: 1, Name: "solo", Chips: 100}
	var streets [numStreets][]PlayerAction
	streets[streetPre] = []PlayerAction{
		act("solo", PostSmallBlind{Amount: 1}),
		act("solo", Collected{Amount: 1}),
	}
	computeChipDeltas([]*Player{p}, streets)
	if p.ChipsAfterHand != 100.00 {
		t.Errorf("ChipsAfterHand = %v, want 100.00", p.ChipsAfterHand)
	}
}

func TestChipDeltaRaiseTopsUpNotAdds(t *testing.T) {
	// Bet $5 then raise to $15 puts $15 into the phase, not $20: the
	// raise line reports the street total.
	p := &Player{Seat: 1, Name: "agg", Chips: 100}
	var streets [numStreets][]PlayerAction
	streets[streetFlop] = []PlayerAction{
		act("agg", Bet{Amount: 5}),
		act("agg", Raise{Amount: 5, To: 15}),
	}
	computeChipDeltas([]*Player{p}, streets)
	if p.ChipsAfterHand != 85.00 {
		t.Errorf("ChipsAfterHand = %v, want 85.00", p.ChipsAfterHand)
	}
}

func TestChipDeltaStreetsAreIndependentPhases(t *testing.T) {
	// A raise on the turn must not absorb the flop contribution.
	p := &Player{Seat: 1, Name: "agg", Chips: 100}
	var streets [numStreets][]PlayerAction
	streets[streetFlop] = []PlayerAction{act("agg", Bet{Amount: 10})}
	streets[streetTurn] = []PlayerAction{act("agg", Raise{Amount: 10, To: 20})}
	computeChipDeltas([]*Player{p}, streets)
	if p.ChipsAfterHand != 70.00 {
		t.Errorf("ChipsAfterHand = %v, want 70.00", p.ChipsAfterHand)
	}
}

func TestChipDeltaBlindAndPreflopShareAPhase(t *testing.T) {
	// The big blind's preflop raise tops up over the posted blind.
	p := &Player{Seat: 2, Name: "bb", Chips: 50}
	var streets [numStreets][]PlayerAction
	streets[streetPre] = []PlayerAction{act("bb", PostBigBlind{Amount: 2})}
	streets[streetPreflop] = []PlayerAction{act("bb", Raise{Amount: 6, To: 8})}
	computeChipDeltas([]*Player{p}, streets)
	if p.ChipsAfterHand != 42.00 {
		t.Errorf("ChipsAfterHand = %v, want 42.00", p.ChipsAfterHand)
	}
}

func TestChipDeltaAllInVariantsAndCredits(t *testing.T) {
	p := &Player{Seat: 3, Name: "shorty", Chips: 30}
	var streets [numStreets][]PlayerAction
	streets[streetPreflop] = []PlayerAction{act("shorty", CallAndAllIn{Amount: 30})}
	streets[streetShowDown] = []PlayerAction{
		act("shorty", CollectedFromMainPot{Amount: 62.50}),
		act("shorty", CollectedFromSidePot{Amount: 4.25}),
	}
	computeChipDeltas([]*Player{p}, streets)
	if p.ChipsAfterHand != 66.75 {
		t.Errorf("ChipsAfterHand = %v, want 66.75", p.ChipsAfterHand)
	}
}

func TestChipDeltaUncalledBetAndCashOut(t *testing.T) {
	p := &Player{Seat: 1, Name: "runner", Chips: 80}
	var streets [numStreets][]PlayerAction
	streets[streetRiver] = []PlayerAction{
		act("runner", BetAndAllIn{Amount: 40}),
		act("runner", UncalledBet{Amount: 15}),
	}
	streets[streetShowDown] = []PlayerAction{
		act("runner", CashedOut{Amount: 50, Fee: 0.5}),
	}
	computeChipDeltas([]*Player{p}, streets)
	if p.ChipsAfterHand != 105.00 {
		t.Errorf("ChipsAfterHand = %v, want 105.00", p.ChipsAfterHand)
	}
}

func TestChipDeltaIgnoresOtherPlayers(t *testing.T) {
	a := &Player{Seat: 1, Name: "a", Chips: 100}
	b := &Player{Seat: 2, Name: "b", Chips: 100}
	var streets [numStreets][]PlayerAction
	streets[streetFlop] = []PlayerAction{
		act("a", Bet{Amount: 10}),
		act("b", Call{Amount: 10}),
	}
	computeChipDeltas([]*Player{a, b}, streets)
	if a.ChipsAfterHand != 90.00 || b.ChipsAfterHand != 90.00 {
		t.Errorf("ChipsAfterHand = %v/%v, want 90.00/90.00", a.ChipsAfterHand, b.ChipsAfterHand)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.2345, 1.23},
		{1.2356, 1.24},
		{9.999, 10.0},
		{100.0, 100.0},
	}
	for _, tt := range tests {
		if got := roundCents(tt.in); got != tt.want {
			t.Errorf("roundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
