package standings

import (
	"fmt"
	"sort"
	"strings"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByWins   SortOrder = "wins"
	SortByName   SortOrder = "name"
	SortByPoints SortOrder = "points"
)

// ParseSortOrder validates a sort order name. Empty means SortByWins.
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	switch order {
	case "":
		return SortByWins, nil
	case SortByWins, SortByName, SortByPoints:
		return order, nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (must be 'wins', 'name' or 'points')", s)
	}
}

// Sort orders records in place
func Sort(records []Record, order SortOrder) {
	switch order {
	case SortByWins:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].WinPct() != records[j].WinPct() {
				return records[i].WinPct() > records[j].WinPct()
			}
			if records[i].Wins != records[j].Wins {
				return records[i].Wins > records[j].Wins
			}
			return compareByName(records[i], records[j])
		})
	case SortByName:
		sort.SliceStable(records, func(i, j int) bool {
			return compareByName(records[i], records[j])
		})
	case SortByPoints:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].PointDiff() != records[j].PointDiff() {
				return records[i].PointDiff() > records[j].PointDiff()
			}
			// If differentials are equal, sort by name
			return compareByName(records[i], records[j])
		})
	}
}

func compareByName(i, j Record) bool {
	return strings.ToLower(i.Team) < strings.ToLower(j.Team)
}
