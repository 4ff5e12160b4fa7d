package main

import (
	"os"

	"github.com/hashicorp-forge/docview/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
