package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "swap"
	app.Usage = "Community rewards backend"
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Category:    "Api",
			Description: `Serves every HTTP endpoint of the rewards backend.`,
		},
		{
			Action:      server.startCron,
			Name:        "cron",
			Usage:       "Start the background jobs",
			Category:    "Worker",
			Description: `Expires overdue redemption codes and promotions on a fixed interval.`,
		},
		{
			Action:      server.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate the database schema",
			Category:    "Database",
			Description: `Creates or updates every table to match the current entities.`,
		},
		{
			Action:      server.startSeedTiers,
			Name:        "seed-tiers",
			Usage:       "Reload the level tier bands from the seed file",
			Category:    "Database",
			Description: `Validates the configured tier seed file and replaces the tier table with its bands.`,
		},
	}

	s.app = app
}
