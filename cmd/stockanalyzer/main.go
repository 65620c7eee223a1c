package main

import (
	"os"

	"StockAnalyzer/cmd/stockanalyzer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
