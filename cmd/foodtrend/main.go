package main

import (
	"os"

	"foodtrend/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
