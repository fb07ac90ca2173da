package main

import (
	"os"

	"github.com/dshills/aimend/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
