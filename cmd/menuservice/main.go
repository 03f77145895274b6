package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "menuservice",
		Usage: "menu ordering service",
		Commands: []*cli.Command{
			{
				Name:   "service",
				Usage:  "serve the ordering page, the JSON API and the health check",
				Action: runService,
			},
			{
				Name:   "migrate",
				Usage:  "apply the receipt journal migrations",
				Action: runMigrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("menuservice failed")
	}
}
