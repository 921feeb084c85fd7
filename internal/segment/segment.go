// Package segment splits a raw hand-history export into individual hand
// blocks and filters out the hand kinds the engine does not parse.
package segment

import "strings"

// The client separates hands with a run of blank lines. Exports written
// on Windows use CRLF; normalize before splitting so both survive.
const handDelimiter = "\n\n\n"

// tournamentMarker flags tournament hands, which use a different header
// and stake structure and are skipped entirely.
const tournamentMarker = "Tournament #"

// Split breaks one export file's text into trimmed hand blocks,
// dropping empty runs. Tournament blocks are included; use IsTournament
// to filter them.
func Split(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(normalized, handDelimiter)
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		block := strings.TrimSpace(part)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// IsTournament reports whether a hand block is a tournament hand.
func IsTournament(block string) bool {
	return strings.Contains(block, tournamentMarker)
}

// CashHands returns only the cash-game blocks of an export.
func CashHands(text string) []string {
	var hands []string
	for _, block := range Split(text) {
		if IsTournament(block) {
			continue
		}
		hands = append(hands, block)
	}
	return hands
}
