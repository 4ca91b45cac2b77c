package main

import (
	epcmd "github.com/erispulse/epscaffold/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	epcmd.SetVersionInfo(version, commit)
	epcmd.Execute()
}
