package handhistory

import (
	"regexp"
	"strconv"
)

// The first lines of a hand carry two independent structural patterns:
// the hand line (id, stakes, timestamp) and the table line (name, seat
// count, button seat). Either one missing is fatal for the hand.

var (
	handLineRe = regexp.MustCompile(
		`PokerStars Hand #(\d+):.+?\(\$(\d+\.\d+)\/\$(\d+\.\d+).+?\) - (\d{4}\/\d{2}\/\d{2}) (\d{2}:\d{2}:\d{2})(?: ([A-Z]+))?`)
	tableLineRe = regexp.MustCompile(`Table '(.+?)' (\d+)-max Seat #(\d+) is the button`)
)

type header struct {
	ID         string
	Date       string // YYYY/MM/DD
	Time       string // HH:MM:SS
	Timezone   string
	SmallBlind float64
	BigBlind   float64
}

type tableInfo struct {
	Name       string
	MaxPlayers int
	DealerSeat int
}

func parseHeader(text string) (header, error) {
	m := handLineRe.FindStringSubmatch(text)
	if m == nil {
		return header{}, &StructuralError{Field: "hand header"}
	}
	small, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return header{}, &StructuralError{HandID: m[1], Field: "small blind amount"}
	}
	big, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return header{}, &StructuralError{HandID: m[1], Field: "big blind amount"}
	}
	return header{
		ID:         m[1],
		Date:       m[4],
		Time:       m[5],
		Timezone:   m[6],
		SmallBlind: small,
		BigBlind:   big,
	}, nil
}

func parseTableInfo(handID, text string) (tableInfo, error) {
	m := tableLineRe.FindStringSubmatch(text)
	if m == nil {
		return tableInfo{}, &StructuralError{HandID: handID, Field: "table line"}
	}
	maxPlayers, err := strconv.Atoi(m[2])
	if err != nil {
		return tableInfo{}, &StructuralError{HandID: handID, Field: "seat count"}
	}
	dealerSeat, err := strconv.Atoi(m[3])
	if err != nil {
		return tableInfo{}, &StructuralError{HandID: handID, Field: "button seat"}
	}
	return tableInfo{Name: m[1], MaxPlayers: maxPlayers, DealerSeat: dealerSeat}, nil
}
