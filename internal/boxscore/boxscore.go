package boxscore

import (
	"fmt"
)

// GameResult represents the final score of a single game
type GameResult struct {
	Date      string `json:"date"`
	AwayTeam  string `json:"away_team"`
	AwayScore int    `json:"away_score"`
	HomeTeam  string `json:"home_team"`
	HomeScore int    `json:"home_score"`
}

// New creates a fully populated GameResult.
// Arguments follow the column order of the source table.
func New(date, awayTeam string, awayScore int, homeTeam string, homeScore int) GameResult {
	return GameResult{
		Date:      date,
		AwayTeam:  awayTeam,
		AwayScore: awayScore,
		HomeTeam:  homeTeam,
		HomeScore: homeScore,
	}
}

// String renders the result with the home side first:
// "[date] home home_score - away away_score"
func (g GameResult) String() string {
	return fmt.Sprintf("[%s] %s %d - %s %d", g.Date, g.HomeTeam, g.HomeScore, g.AwayTeam, g.AwayScore)
}

// Winner returns the winning team's name, or "" for a tie
func (g GameResult) Winner() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.HomeTeam
	case g.AwayScore > g.HomeScore:
		return g.AwayTeam
	default:
		return ""
	}
}

// IsTie reports whether both sides finished level
func (g GameResult) IsTie() bool {
	return g.HomeScore == g.AwayScore
}
