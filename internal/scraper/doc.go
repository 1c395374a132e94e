// Package scraper fetches footballdb.com season result pages and extracts game results.
//
// Fetching is a single GET of the games index for one NFL season, sent with a
// browser User-Agent so the site serves its normal HTML. Extraction walks every
// "statistics" table on the page and maps each data row (class row0 or row1) onto a
// boxscore.GameResult. All knowledge of the site's markup lives in the FootballDB
// extractor.
package scraper
