package main

import (
	"os"

	"github.com/hashicorp-forge/gitrefs/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
