// main is the entry point of the portfolio CLI and web server.
package main

import (
	"github.com/khaledelg/portfolio/cmd"
	"github.com/khaledelg/portfolio/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
