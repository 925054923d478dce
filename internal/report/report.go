// Package report renders win counts for people and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/wincounter/wins"
)

// Reporter writes reports to a single destination.
type Reporter struct {
	writer io.Writer
	logger *log.Logger
	names  Names

	headerStyle lipgloss.Style
	nameStyle   lipgloss.Style
	winStyle    lipgloss.Style
	tieStyle    lipgloss.Style
	totalStyle  lipgloss.Style
}

// NewReporter creates a reporter. Colours are only emitted when writer is a
// terminal.
func NewReporter(writer io.Writer, logger *log.Logger, names Names) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if names == nil {
		names = DefaultNames
	}

	renderer := lipgloss.NewRenderer(writer)
	return &Reporter{
		writer:      writer,
		logger:      logger,
		names:       names,
		headerStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		nameStyle:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		winStyle:    renderer.NewStyle().Foreground(lipgloss.Color("10")),
		tieStyle:    renderer.NewStyle().Foreground(lipgloss.Color("11")),
		totalStyle:  renderer.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// DefaultNames numbers seats from 1.
func DefaultNames(index int) string {
	return fmt.Sprintf("Player #%d", index+1)
}

// WriteResults writes a table with one row per participant, then the
// canonical "Player #n ..." lines.
func (r *Reporter) WriteResults(res wins.Results) error {
	tw := tabwriter.NewWriter(r.writer, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		r.headerStyle.Render("player"),
		r.headerStyle.Render("win"),
		r.headerStyle.Render("tie"),
		r.headerStyle.Render("total"),
		r.headerStyle.Render("95% ci"))

	for i := range res.Tallies {
		win, tie := res.WinsAndTiesPercentages(i)
		low, high := combinedInterval(res, i)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.nameStyle.Render(r.names(i)),
			r.winStyle.Render(fmt.Sprintf("%.2f%%", win)),
			r.tieStyle.Render(fmt.Sprintf("%.2f%%", tie)),
			r.totalStyle.Render(fmt.Sprintf("%.1f%%", res.WinsTotalPercentage(i))),
			fmt.Sprintf("%.1f-%.1f%%", low, high))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write results table: %w", err)
	}

	if _, err := fmt.Fprintf(r.writer, "\n%s%d contests\n", res.String(), res.CaseCount); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	r.logger.Debug("Wrote results", "players", res.PlayerCount, "contests", res.CaseCount)
	return nil
}

// WriteHeadsUp writes the canonical heads-up line followed by each side's
// cumulative percentage.
func (r *Reporter) WriteHeadsUp(hu wins.HeadsUp) error {
	_, err := fmt.Fprintf(r.writer, "%s\n%s %s, %s %s\n",
		hu.String(),
		r.nameStyle.Render(r.names(0)),
		r.totalStyle.Render(fmt.Sprintf("%.2f%%", hu.PercentageFirstCumulative())),
		r.nameStyle.Render(r.names(1)),
		r.totalStyle.Render(fmt.Sprintf("%.2f%%", hu.PercentageSecondCumulative())))
	if err != nil {
		return fmt.Errorf("write heads-up: %w", err)
	}
	if total := hu.PercentageTotal(); hu.Total() > 0 && total != 100 {
		r.logger.Warn("Heads-up percentages do not sum to 100", "total", total)
	}
	return nil
}

// WriteResultsJSON writes res as an indented ResultsRecord.
func (r *Reporter) WriteResultsJSON(res wins.Results) error {
	return r.WriteJSON(NewResultsRecord(res, r.names))
}

// WriteHeadsUpJSON writes hu as an indented HeadsUpRecord.
func (r *Reporter) WriteHeadsUpJSON(hu wins.HeadsUp) error {
	return r.WriteJSON(NewHeadsUpRecord(hu, r.names))
}

// WriteJSON writes v as indented JSON
func (r *Reporter) WriteJSON(v any) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
