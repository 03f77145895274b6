package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/mysql"
)

func runMigrate(_ *cli.Context) error {
	cfg, err := parseEnv()
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return err
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("MENU_DATABASE_DSN is required to run migrations")
	}

	db, err := mysql.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := mysql.Migrate(db); err != nil {
		return err
	}
	log.Info("Migrations applied")
	return nil
}
