// Package cli implements the command-line interface for fbdb-scores.
//
// The cli package provides the Cobra-based CLI with a boxscores command that prints
// a season's game results as text lines or JSON, and a standings command that
// aggregates those results into team records. It coordinates the config, scraper,
// standings and storage packages.
package cli
