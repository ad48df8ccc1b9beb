package main

import "github.com/skagen-tools/marketfill/internal/cli"

func main() {
	cli.Execute()
}
