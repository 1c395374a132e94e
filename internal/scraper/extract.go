package scraper

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/fbdb-scores/internal/boxscore"
	"github.com/pfrederiksen/fbdb-scores/internal/logger"
)

// footballdb markup
const (
	TableSelector  = "table.statistics"
	RowSelector    = "tr.row0, tr.row1"
	CellSelector   = "td"
	HiddenSelector = "span.hidden-xs"
)

// Column names, in the order cells appear in a data row
const (
	ColumnDate      = "date"
	ColumnAwayTeam  = "away_team"
	ColumnAwayScore = "away_score"
	ColumnHomeTeam  = "home_team"
	ColumnHomeScore = "home_score"
)

const cellsPerRow = 5

// Extractor turns a results page into game results in document order
type Extractor interface {
	Extract(r io.Reader) ([]boxscore.GameResult, error)
}

// FootballDB extracts results from footballdb.com games pages
type FootballDB struct {
	// RejectNegativeScores makes a negative score a parse error
	RejectNegativeScores bool
}

// ParseGames extracts results from an HTML string with the default extractor
func ParseGames(html string) ([]boxscore.GameResult, error) {
	return FootballDB{}.Extract(strings.NewReader(html))
}

// Extract parses every data row of every statistics table. The first malformed row
// aborts extraction and no results are returned.
func (f FootballDB) Extract(r io.Reader) ([]boxscore.GameResult, error) {
	start := time.Now()
	defer func() { logger.RecordTiming("extract", time.Since(start)) }()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	games := make([]boxscore.GameResult, 0)
	var parseErr error

	tables := doc.Find(TableSelector)
	tables.EachWithBreak(func(ti int, table *goquery.Selection) bool {
		table.Find(RowSelector).EachWithBreak(func(ri int, row *goquery.Selection) bool {
			game, err := f.parseRow(row)
			if err != nil {
				err.Table = ti
				err.Row = ri
				parseErr = err
				return false
			}
			games = append(games, game)
			return true
		})
		return parseErr == nil
	})

	if parseErr != nil {
		return nil, parseErr
	}

	logger.AddCounter("games.parsed", int64(len(games)))
	logger.Debug("Extracted games", logger.Fields{
		"tables": tables.Length(),
		"games":  len(games),
	})

	return games, nil
}

// parseRow maps the first five cells of a data row onto a GameResult
func (f FootballDB) parseRow(row *goquery.Selection) (boxscore.GameResult, *ParseError) {
	cells := row.Find(CellSelector)
	if cells.Length() < cellsPerRow {
		return boxscore.GameResult{}, &ParseError{
			Err: fmt.Errorf("%w: found %d", ErrTooFewCells, cells.Length()),
		}
	}

	date, err := hiddenText(cells.Eq(0), ColumnDate)
	if err != nil {
		return boxscore.GameResult{}, err
	}
	awayTeam, err := hiddenText(cells.Eq(1), ColumnAwayTeam)
	if err != nil {
		return boxscore.GameResult{}, err
	}
	awayScore, err := f.score(cells.Eq(2), ColumnAwayScore)
	if err != nil {
		return boxscore.GameResult{}, err
	}
	homeTeam, err := hiddenText(cells.Eq(3), ColumnHomeTeam)
	if err != nil {
		return boxscore.GameResult{}, err
	}
	homeScore, err := f.score(cells.Eq(4), ColumnHomeScore)
	if err != nil {
		return boxscore.GameResult{}, err
	}

	return boxscore.New(date, awayTeam, awayScore, homeTeam, homeScore), nil
}

// hiddenText returns the concatenated text of the cell's span.hidden-xs elements.
// The cell also carries an abbreviated span for narrow screens, so the cell's own
// text is not the field value.
func hiddenText(cell *goquery.Selection, column string) (string, *ParseError) {
	spans := cell.Find(HiddenSelector)
	if spans.Length() == 0 {
		return "", &ParseError{Column: column, Err: ErrMissingSpan}
	}
	return spans.Text(), nil
}

// score parses the whole cell text as a 32-bit integer
func (f FootballDB) score(cell *goquery.Selection, column string) (int, *ParseError) {
	text := strings.TrimSpace(cell.Text())
	parsed, err := strconv.ParseInt(text, 10, 32)
	value := int(parsed)
	if err != nil {
		return 0, &ParseError{Column: column, Err: fmt.Errorf("invalid score %q: %w", text, err)}
	}
	if value < 0 && f.RejectNegativeScores {
		return 0, &ParseError{Column: column, Err: fmt.Errorf("%w: %d", ErrNegativeScore, value)}
	}
	return value, nil
}
