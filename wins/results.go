package wins

import (
	"fmt"
	"math"
	"strings"
)

// Tally is one participant's pure wins and shared wins.
type Tally struct {
	Wins int `json:"wins"`
	Ties int `json:"ties"`
}

// Results is a read-only snapshot of a Log for a known number of
// participants.
type Results struct {
	CaseCount   int     `json:"case_count"`
	PlayerCount int     `json:"player_count"`
	Tallies     []Tally `json:"tallies"`
}

// FromLog counts every participant in [0, playerCount). The player count is
// passed in rather than inferred from the flags: the caller already knows it
// and a log can hold millions of outcomes.
//
// Participants past MaxPlayers have no bit to look for and get an empty
// tally.
func FromLog(l *Log, playerCount int) Results {
	playerCount = max(playerCount, 0)
	results := Results{
		CaseCount:   l.Len(),
		PlayerCount: playerCount,
		Tallies:     make([]Tally, playerCount),
	}
	for i := range min(playerCount, MaxPlayers) {
		wins, ties := l.WinsFor(FromIndex(i))
		results.Tallies[i] = Tally{Wins: wins - ties, Ties: ties}
	}
	return results
}

// WinsAndTies returns the pure wins and ties for a 0-based index, or zeros
// when the index is out of range.
func (r Results) WinsAndTies(index int) (wins, ties int) {
	if index < 0 || index >= len(r.Tallies) {
		return 0, 0
	}
	t := r.Tallies[index]
	return t.Wins, t.Ties
}

// WinsAndTiesPercentages returns WinsAndTies as percentages of CaseCount.
func (r Results) WinsAndTiesPercentages(index int) (win, tie float64) {
	wins, ties := r.WinsAndTies(index)
	return CalculatePercentage(wins, r.CaseCount), CalculatePercentage(ties, r.CaseCount)
}

// WinsTotal returns wins plus ties.
func (r Results) WinsTotal(index int) int {
	wins, ties := r.WinsAndTies(index)
	return wins + ties
}

func (r Results) WinsTotalPercentage(index int) float64 {
	return CalculatePercentage(r.WinsTotal(index), r.CaseCount)
}

// PlayerString renders one participant as
// "81.6% (79.73%/1.88%) [1365284/32116]": combined percentage to one
// decimal, win and tie percentages to two, then the raw counts. A
// participant with nothing to show renders as "0.00%".
func (r Results) PlayerString(index int) string {
	wins, ties := r.WinsAndTies(index)
	win, tie := r.WinsAndTiesPercentages(index)
	combined := win + tie
	if math.Round(combined*100) == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.1f%% (%.2f%%/%.2f%%) [%d/%d]", combined, win, tie, wins, ties)
}

// String renders one "Player #n ..." line per participant, 1-based. Every
// line, including the last, ends in a newline.
func (r Results) String() string {
	var sb strings.Builder
	for i := range r.Tallies {
		fmt.Fprintf(&sb, "Player #%d %s\n", i+1, r.PlayerString(i))
	}
	return sb.String()
}
