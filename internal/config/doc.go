// Package config loads scraper settings for fbdb-scores.
//
// Settings start from built-in defaults, are overlaid by an optional YAML file and
// finally by environment variables (a .env file in the working directory is loaded
// first when present).
package config
