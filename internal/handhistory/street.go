package handhistory

import (
	"regexp"
	"strings"
)

// Section markers emitted by the poker client. A missing marker means the
// hand ended before that street; the section and every later one stay empty.
const (
	markerHoleCards = "*** HOLE CARDS ***"
	markerFlop      = "*** FLOP ***"
	markerTurn      = "*** TURN ***"
	markerRiver     = "*** RIVER ***"
	markerShowDown  = "*** SHOW DOWN ***"
	markerSummary   = "*** SUMMARY ***"
)

// streetIndex identifies one of the six action sections of a hand.
type streetIndex int

const (
	streetPre streetIndex = iota
	streetPreflop
	streetFlop
	streetTurn
	streetRiver
	streetShowDown
	numStreets
)

var sectionMarkers = map[string]streetIndex{
	markerHoleCards: streetPreflop,
	markerFlop:      streetFlop,
	markerTurn:      streetTurn,
	markerRiver:     streetRiver,
	markerShowDown:  streetShowDown,
}

// splitStreets partitions the hand body into raw lines per section.
// Marker lines themselves are dropped (they carry board fragments, not
// actions), and everything from *** SUMMARY *** on is excluded: the
// summary is parsed structurally, not through the action grammar.
func splitStreets(text string) [numStreets][]string {
	var sections [numStreets][]string
	current := streetPre
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, markerSummary) {
			break
		}
		marked := false
		for marker, idx := range sectionMarkers {
			if strings.HasPrefix(line, marker) {
				current = idx
				marked = true
				break
			}
		}
		if marked {
			continue
		}
		sections[current] = append(sections[current], line)
	}
	return sections
}

var seatLineRe = regexp.MustCompile(`^Seat (\d+): (.+?) \(\$([0-9.]+) in chips\)( is sitting out)?`)

// isArtifactLine reports lines that belong to a section but are not
// actions: blanks, the hole-card deal line, and the pre-deal structural
// lines handled by the header and seat parsers.
func isArtifactLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return true
	case strings.HasPrefix(trimmed, "Dealt to "):
		return true
	case strings.HasPrefix(trimmed, "PokerStars Hand #"):
		return true
	case strings.HasPrefix(trimmed, "Table '"):
		return true
	case seatLineRe.MatchString(trimmed):
		return true
	}
	return false
}

// parseSectionActions maps the grammar over one section's lines.
func parseSectionActions(lines []string) ([]PlayerAction, error) {
	var actions []PlayerAction
	for _, line := range lines {
		if isArtifactLine(line) {
			continue
		}
		pa, err := parseActionLine(strings.TrimSpace(line))
		if err != nil {
			return nil, err
		}
		actions = append(actions, pa)
	}
	return actions, nil
}

// parseStreets runs the grammar over every section of the hand body.
func parseStreets(text string) ([numStreets][]PlayerAction, error) {
	var out [numStreets][]PlayerAction
	sections := splitStreets(text)
	for i, lines := range sections {
		actions, err := parseSectionActions(lines)
		if err != nil {
			return out, err
		}
		out[i] = actions
	}
	return out, nil
}

// hasFlop reports whether the hand reached a flop.
func hasFlop(text string) bool {
	return strings.Contains(text, markerFlop)
}
