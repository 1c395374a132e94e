// Package boxscore provides the GameResult record produced by the footballdb scraper.
//
// A GameResult holds the final score of one completed game: the date as displayed by
// the source, the away and home team names and each side's score. Results are passed
// around by value and serialize to a stable JSON shape
// (date, away_team, away_score, home_team, home_score).
package boxscore
