package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wincounter/wins"
)

func theHand() *wins.Log {
	var l wins.Log
	l.AddN(wins.First, 1_365_284)
	l.AddN(wins.Second, 314_904)
	l.AddN(wins.First|wins.Second, 32_116)
	return &l
}

func names(index int) string {
	return []string{"Daniel", "Gus"}[index]
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, names)

	require.NoError(t, r.WriteResults(wins.FromLog(theHand(), 2)))
	out := buf.String()

	assert.Contains(t, out, "Daniel")
	assert.Contains(t, out, "79.73%")
	assert.Contains(t, out, "81.6%")
	assert.Contains(t, out, "Player #1 81.6% (79.73%/1.88%) [1365284/32116]\n")
	assert.Contains(t, out, "Player #2 20.3% (18.39%/1.88%) [314904/32116]\n")
	assert.True(t, strings.HasSuffix(out, "1712304 contests\n"))
}

func TestWriteResultsDefaultNames(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, nil)

	require.NoError(t, r.WriteResults(wins.FromLog(wins.NewLog(wins.Third), 3)))
	out := buf.String()

	assert.Contains(t, out, "Player #3")
	assert.Contains(t, out, "Player #1 0.00%\n")
	assert.Contains(t, out, "Player #3 100.0% (100.00%/0.00%) [1/0]\n")
}

func TestWriteHeadsUp(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, names)

	require.NoError(t, r.WriteHeadsUp(theHand().HeadsUp()))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "79.73% (1365284), 18.39% (314904), 1.88% (32116)", lines[0])
	assert.Contains(t, lines[1], "Daniel")
	assert.Contains(t, lines[1], "81.61%")
	assert.Contains(t, lines[1], "20.27%")
}

func TestWriteResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, names)

	require.NoError(t, r.WriteResultsJSON(wins.FromLog(theHand(), 2)))

	var rec ResultsRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, 1_712_304, rec.CaseCount)
	assert.Equal(t, 2, rec.PlayerCount)
	require.Len(t, rec.Players, 2)

	daniel := rec.Players[0]
	assert.Equal(t, 1, daniel.Seat)
	assert.Equal(t, "Daniel", daniel.Name)
	assert.Equal(t, 1_365_284, daniel.Wins)
	assert.Equal(t, 32_116, daniel.Ties)
	assert.InDelta(t, 81.60934, daniel.TotalPercent, 1e-4)
	assert.Less(t, daniel.CI95Low, daniel.TotalPercent)
	assert.Greater(t, daniel.CI95High, daniel.TotalPercent)
	assert.Equal(t, "81.6% (79.73%/1.88%) [1365284/32116]", daniel.Summary)
}

func TestWriteHeadsUpJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, names)

	require.NoError(t, r.WriteHeadsUpJSON(wins.NewHeadsUp(40, 40, 20)))
	assert.Contains(t, buf.String(), `"first": "Daniel"`)
	assert.Contains(t, buf.String(), `"first_cumulative_percent": 60`)

	var rec HeadsUpRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, 100, rec.Total)
	assert.InDelta(t, 20.0, rec.TiePercent, 1e-9)
	assert.Equal(t, "40.00% (40), 40.00% (40), 20.00% (20)", rec.Summary)
}
