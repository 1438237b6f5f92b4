package main

import (
	"os"

	"github.com/roach88/tracecmp/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
