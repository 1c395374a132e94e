package standings

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pfrederiksen/fbdb-scores/internal/boxscore"
)

// Record is one team's season record
type Record struct {
	Team          string `json:"team"`
	Games         int    `json:"games"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Ties          int    `json:"ties"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
}

// WinPct returns the winning percentage, counting a tie as half a win
func (r Record) WinPct() float64 {
	if r.Games == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.Ties)/2) / float64(r.Games)
}

// PointDiff returns points scored minus points allowed
func (r Record) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}

// Compute builds one record per team, in order of first appearance
func Compute(games []boxscore.GameResult) []Record {
	index := make(map[string]int)
	records := make([]Record, 0)

	get := func(team string) *Record {
		i, ok := index[team]
		if !ok {
			i = len(records)
			index[team] = i
			records = append(records, Record{Team: team})
		}
		return &records[i]
	}

	for _, g := range games {
		get(g.AwayTeam).apply(g, g.AwayScore, g.HomeScore)
		get(g.HomeTeam).apply(g, g.HomeScore, g.AwayScore)
	}

	return records
}

// apply adds one game to the record from the team's side
func (r *Record) apply(g boxscore.GameResult, scored, allowed int) {
	r.Games++
	r.PointsFor += scored
	r.PointsAgainst += allowed
	switch {
	case g.IsTie():
		r.Ties++
	case g.Winner() == r.Team:
		r.Wins++
	default:
		r.Losses++
	}
}

// WriteTable renders records as a rounded go-pretty table
func WriteTable(w io.Writer, records []Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Team", "W", "L", "T", "Pct", "PF", "PA", "Diff"})

	for i, r := range records {
		t.AppendRow(table.Row{
			i + 1,
			r.Team,
			r.Wins,
			r.Losses,
			r.Ties,
			fmt.Sprintf("%.3f", r.WinPct()),
			r.PointsFor,
			r.PointsAgainst,
			signed(r.PointDiff()),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
