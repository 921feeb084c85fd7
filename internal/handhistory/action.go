package handhistory

import (
	"encoding/json"

	"github.com/aipokercoach/handscraper/internal/deck"
)

// Action is one parsed betting-line variant. The set is closed: every
// implementation lives in this file and every Action value is produced by
// exactly one grammar rule. Consumers (wire encoding, chip replay) switch
// over the concrete types exhaustively.
type Action interface {
	actionType() string
}

// Blind postings and table-state lines seen before the deal.
type (
	// PostSmallBlind is "<name>: posts small blind $X".
	PostSmallBlind struct{ Amount float64 }
	// PostBigBlind is "<name>: posts big blind $X".
	PostBigBlind struct{ Amount float64 }
	// SitsOut is "<name>: sits out".
	SitsOut struct{}
)

// Betting actions.
type (
	// Fold is "<name>: folds".
	Fold struct{}
	// Check is "<name>: checks".
	Check struct{}
	// Call is "<name>: calls $X".
	Call struct{ Amount float64 }
	// Bet is "<name>: bets $X".
	Bet struct{ Amount float64 }
	// CallAndAllIn is a call that commits the player's whole stack.
	CallAndAllIn struct{ Amount float64 }
	// BetAndAllIn is a bet that commits the player's whole stack.
	BetAndAllIn struct{ Amount float64 }
	// Raise is "<name>: raises $X to $Y"; To is the street total, not the delta.
	Raise struct{ Amount, To float64 }
	// RaiseAndAllIn is a raise that commits the player's whole stack.
	RaiseAndAllIn struct{ Amount, To float64 }
)

// Showdown and pot-settlement lines.
type (
	// Muck is "<name>: mucks hand".
	Muck struct{}
	// Shows carries the revealed hole cards and the client's hand description.
	Shows struct {
		Cards [2]deck.Card
		Desc  string
	}
	// Collected is "<name> collected $X from pot".
	Collected struct{ Amount float64 }
	// CollectedFromSidePot is "<name> collected $X from side pot".
	CollectedFromSidePot struct{ Amount float64 }
	// CollectedFromMainPot is "<name> collected $X from main pot".
	CollectedFromMainPot struct{ Amount float64 }
	// CashedOut is the all-in cash-out feature; Fee is 0 when the line
	// carries no fee clause.
	CashedOut struct{ Amount, Fee float64 }
	// UncalledBet is "Uncalled bet ($X) returned to <name>".
	UncalledBet struct{ Amount float64 }
	// DoesNotShow is "<name>: doesn't show hand".
	DoesNotShow struct{}
)

// Connection and seating churn.
type (
	// TimedOut is "<name> has timed out".
	TimedOut struct{}
	// Join is "<name> joins the table".
	Join struct{}
	// Leave is "<name> leaves the table".
	Leave struct{}
	// Disconnected is "<name> is disconnected".
	Disconnected struct{}
	// Connected is "<name> is connected".
	Connected struct{}
)

func (PostSmallBlind) actionType() string       { return "PostSmallBlind" }
func (PostBigBlind) actionType() string         { return "PostBigBlind" }
func (SitsOut) actionType() string              { return "SitsOut" }
func (Fold) actionType() string                 { return "Fold" }
func (Check) actionType() string                { return "Check" }
func (Call) actionType() string                 { return "Call" }
func (Bet) actionType() string                  { return "Bet" }
func (CallAndAllIn) actionType() string         { return "CallAndAllIn" }
func (BetAndAllIn) actionType() string          { return "BetAndAllIn" }
func (Raise) actionType() string                { return "Raise" }
func (RaiseAndAllIn) actionType() string        { return "RaiseAndAllIn" }
func (Muck) actionType() string                 { return "Muck" }
func (Shows) actionType() string                { return "Shows" }
func (Collected) actionType() string            { return "Collected" }
func (CollectedFromSidePot) actionType() string { return "CollectedFromSidePot" }
func (CollectedFromMainPot) actionType() string { return "CollectedFromMainPot" }
func (CashedOut) actionType() string            { return "CashedOut" }
func (UncalledBet) actionType() string          { return "UncalledBet" }
func (DoesNotShow) actionType() string          { return "DoesNotShow" }
func (TimedOut) actionType() string             { return "TimedOut" }
func (Join) actionType() string                 { return "Join" }
func (Leave) actionType() string                { return "Leave" }
func (Disconnected) actionType() string         { return "Disconnected" }
func (Connected) actionType() string            { return "Connected" }

// PlayerAction pairs an acting player's name with the parsed action.
type PlayerAction struct {
	PlayerName string
	Action     Action
}

// actionWire is the canonical serialized form of one action: a type tag
// plus only the payload fields that variant carries.
type actionWire struct {
	Type   string   `json:"type"`
	Amount *float64 `json:"amount,omitempty"`
	To     *float64 `json:"to,omitempty"`
	Fee    *float64 `json:"fee,omitempty"`
	Cards  []string `json:"cards,omitempty"`
	Desc   string   `json:"desc,omitempty"`
}

func num(v float64) *float64 { return &v }

func encodeAction(a Action) actionWire {
	w := actionWire{Type: a.actionType()}
	switch v := a.(type) {
	case PostSmallBlind:
		w.Amount = num(v.Amount)
	case PostBigBlind:
		w.Amount = num(v.Amount)
	case SitsOut, Fold, Check, Muck, DoesNotShow, TimedOut, Join, Leave, Disconnected, Connected:
		// no payload
	case Call:
		w.Amount = num(v.Amount)
	case Bet:
		w.Amount = num(v.Amount)
	case CallAndAllIn:
		w.Amount = num(v.Amount)
	case BetAndAllIn:
		w.Amount = num(v.Amount)
	case Raise:
		w.Amount = num(v.Amount)
		w.To = num(v.To)
	case RaiseAndAllIn:
		w.Amount = num(v.Amount)
		w.To = num(v.To)
	case Shows:
		w.Cards = []string{v.Cards[0].String(), v.Cards[1].String()}
		w.Desc = v.Desc
	case Collected:
		w.Amount = num(v.Amount)
	case CollectedFromSidePot:
		w.Amount = num(v.Amount)
	case CollectedFromMainPot:
		w.Amount = num(v.Amount)
	case CashedOut:
		w.Amount = num(v.Amount)
		w.Fee = num(v.Fee)
	case UncalledBet:
		w.Amount = num(v.Amount)
	}
	return w
}

// MarshalJSON emits the {player_name, action} wire object.
func (pa PlayerAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PlayerName string     `json:"player_name"`
		Action     actionWire `json:"action"`
	}{
		PlayerName: pa.PlayerName,
		Action:     encodeAction(pa.Action),
	})
}
