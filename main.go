package main

import (
	"github.com/minepkg/mcprofile/cmd"
)

// set by goreleaser
var (
	version string
	commit  string
)

func main() {
	if version != "" {
		cmd.Version = version
	}
	cmd.Commit = commit
	cmd.Execute()
}
