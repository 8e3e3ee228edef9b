package main

import "github.com/pfrederiksen/nfl-cap-tracker/internal/cli"

func main() {
	cli.Execute()
}
