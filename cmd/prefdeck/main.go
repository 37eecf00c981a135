package main

import "github.com/rssowl/prefdeck/internal/cli"

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
