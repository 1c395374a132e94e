package main

import "github.com/pfrederiksen/fbdb-scores/internal/cli"

func main() {
	cli.Execute()
}
