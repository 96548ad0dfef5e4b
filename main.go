package main

import (
	"github.com/CherDalov/Accountability-2.0/cmd"
)

// version will be set by goreleaser during build
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
