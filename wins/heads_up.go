package wins

import (
	"fmt"
	"math"
)

// HeadsUp is the two participant summary: outright wins for each side and
// shared results. The three counts never overlap.
//
// In "The Hand" between Daniel Negreanu (6♠ 6♥) and Gus Hansen (5♦ 5♣),
// enumerating every board gives
//
//	NewHeadsUp(1365284, 314904, 32116).String()
//	// 79.73% (1365284), 18.39% (314904), 1.88% (32116)
type HeadsUp struct {
	FirstWins  int `json:"first_wins"`
	SecondWins int `json:"second_wins"`
	Ties       int `json:"ties"`
}

// NewHeadsUp creates a HeadsUp from known counts.
func NewHeadsUp(firstWins, secondWins, ties int) HeadsUp {
	return HeadsUp{FirstWins: firstWins, SecondWins: secondWins, Ties: ties}
}

// Total returns the number of contests.
func (h HeadsUp) Total() int {
	return h.FirstWins + h.SecondWins + h.Ties
}

func (h HeadsUp) PercentageFirst() float64 {
	return CalculatePercentage(h.FirstWins, h.Total())
}

// PercentageFirstCumulative is how often the first participant did not
// lose outright.
func (h HeadsUp) PercentageFirstCumulative() float64 {
	return CalculatePercentage(h.FirstWins+h.Ties, h.Total())
}

func (h HeadsUp) PercentageSecond() float64 {
	return CalculatePercentage(h.SecondWins, h.Total())
}

// PercentageSecondCumulative is how often the second participant did not
// lose outright.
func (h HeadsUp) PercentageSecondCumulative() float64 {
	return CalculatePercentage(h.SecondWins+h.Ties, h.Total())
}

func (h HeadsUp) PercentageTies() float64 {
	return CalculatePercentage(h.Ties, h.Total())
}

// PercentageTotal sums the three percentages rounded to two decimals. It is
// a display sanity check and should read 100 for any non-empty summary.
func (h HeadsUp) PercentageTotal() float64 {
	x := h.PercentageFirst() + h.PercentageSecond() + h.PercentageTies()
	return math.Round(x*100) / 100
}

func (h HeadsUp) String() string {
	return fmt.Sprintf("%.2f%% (%d), %.2f%% (%d), %.2f%% (%d)",
		h.PercentageFirst(), h.FirstWins,
		h.PercentageSecond(), h.SecondWins,
		h.PercentageTies(), h.Ties)
}
