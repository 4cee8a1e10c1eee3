package cmd

import (
	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

// GlobalFlags control logging for every command
var GlobalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "log-level",
		Value:  "notice",
		Usage:  "log level: debug, info, notice, warning or error",
		EnvVar: "PATHTRACER_LOG",
	},
	cli.BoolFlag{
		Name:  "v",
		Usage: "enable verbose logging",
	},
	cli.BoolFlag{
		Name:  "vv",
		Usage: "enable even more verbose logging",
	},
}

// setupLogging applies --log-level; -v and -vv take precedence
func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.ParseLevel(ctx.GlobalString("log-level")))

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
