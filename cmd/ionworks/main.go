package main

import (
	"os"

	"github.com/ionworks/ionworks-schema/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
