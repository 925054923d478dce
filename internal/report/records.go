package report

import (
	"github.com/lox/wincounter/internal/statistics"
	"github.com/lox/wincounter/wins"
)

// ResultsRecord is the JSON form of wins.Results.
type ResultsRecord struct {
	CaseCount   int            `json:"case_count"`
	PlayerCount int            `json:"player_count"`
	Players     []PlayerRecord `json:"players"`
}

// PlayerRecord is one participant's line in a ResultsRecord.
type PlayerRecord struct {
	Seat         int     `json:"seat"`
	Name         string  `json:"name"`
	Wins         int     `json:"wins"`
	Ties         int     `json:"ties"`
	WinPercent   float64 `json:"win_percent"`
	TiePercent   float64 `json:"tie_percent"`
	TotalPercent float64 `json:"total_percent"`
	CI95Low      float64 `json:"ci_95_low"`
	CI95High     float64 `json:"ci_95_high"`
	Summary      string  `json:"summary"`
}

// HeadsUpRecord is the JSON form of wins.HeadsUp.
type HeadsUpRecord struct {
	First            string  `json:"first"`
	Second           string  `json:"second"`
	FirstWins        int     `json:"first_wins"`
	SecondWins       int     `json:"second_wins"`
	Ties             int     `json:"ties"`
	Total            int     `json:"total"`
	FirstPercent     float64 `json:"first_percent"`
	SecondPercent    float64 `json:"second_percent"`
	TiePercent       float64 `json:"tie_percent"`
	FirstCumulative  float64 `json:"first_cumulative_percent"`
	SecondCumulative float64 `json:"second_cumulative_percent"`
	Summary          string  `json:"summary"`
}

// Names maps a 0-based seat index to a display name.
type Names func(index int) string

// NewResultsRecord flattens r for serialization.
func NewResultsRecord(r wins.Results, names Names) ResultsRecord {
	rec := ResultsRecord{
		CaseCount:   r.CaseCount,
		PlayerCount: r.PlayerCount,
		Players:     make([]PlayerRecord, 0, len(r.Tallies)),
	}
	for i := range r.Tallies {
		w, t := r.WinsAndTies(i)
		winPct, tiePct := r.WinsAndTiesPercentages(i)
		low, high := combinedInterval(r, i)
		rec.Players = append(rec.Players, PlayerRecord{
			Seat:         i + 1,
			Name:         names(i),
			Wins:         w,
			Ties:         t,
			WinPercent:   winPct,
			TiePercent:   tiePct,
			TotalPercent: r.WinsTotalPercentage(i),
			CI95Low:      low,
			CI95High:     high,
			Summary:      r.PlayerString(i),
		})
	}
	return rec
}

// NewHeadsUpRecord flattens hu for serialization.
func NewHeadsUpRecord(hu wins.HeadsUp, names Names) HeadsUpRecord {
	return HeadsUpRecord{
		First:            names(0),
		Second:           names(1),
		FirstWins:        hu.FirstWins,
		SecondWins:       hu.SecondWins,
		Ties:             hu.Ties,
		Total:            hu.Total(),
		FirstPercent:     hu.PercentageFirst(),
		SecondPercent:    hu.PercentageSecond(),
		TiePercent:       hu.PercentageTies(),
		FirstCumulative:  hu.PercentageFirstCumulative(),
		SecondCumulative: hu.PercentageSecondCumulative(),
		Summary:          hu.String(),
	}
}

// combinedInterval is the 95% interval of wins+ties, in percent.
func combinedInterval(r wins.Results, index int) (float64, float64) {
	p := statistics.Proportion{Successes: r.WinsTotal(index), Trials: r.CaseCount}
	low, high := p.ConfidenceInterval95()
	return low * 100, high * 100
}
