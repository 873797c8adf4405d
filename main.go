// Package main is the entry point for the playkit diagnostic CLI.
package main

import (
	"github.com/samber/lo"

	"github.com/playkit-ui/playkit/cmd"
	"github.com/playkit-ui/playkit/config"
	"github.com/playkit-ui/playkit/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
