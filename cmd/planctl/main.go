package main

import (
	"fmt"
	"os"

	"wander/internal/cli"
)

func main() {
	app := cli.NewApp()
	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
