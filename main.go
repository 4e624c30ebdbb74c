package main

import (
	"github.com/gokulrajanpillai/TradeDeskCLI/internal/cli"
)

func main() {
	cli.Run()
}
