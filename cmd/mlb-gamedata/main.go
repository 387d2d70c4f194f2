package main

import "github.com/pfrederiksen/mlb-gamedata/internal/cli"

func main() {
	cli.Execute()
}
