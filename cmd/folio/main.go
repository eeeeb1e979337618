package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "folio",
		Usage:   "a bilingual static blog generator",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "load environment variables from `FILE`",
				Value: ".env",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every file written",
			},
		},
		Before: func(c *cli.Context) error {
			if err := godotenv.Load(c.String("env-file")); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("load %s: %w", c.String("env-file"), err)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "render the site into OUTPUT_DIR",
				Action: buildAction,
			},
			{
				Name:  "serve",
				Usage: "run the live preview server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "listen address, overrides ADDR",
					},
				},
				Action: serveAction,
			},
			{
				Name:  "version",
				Usage: "print the folio version",
				Action: func(c *cli.Context) error {
					fmt.Printf("folio %s\n", version)
					return nil
				},
			},
			{
				Name:      "new",
				Usage:     "create a new folio project",
				ArgsUsage: "<project-name>",
				Action:    newAction,
			},
		},
	}
}

func newSite(c *cli.Context) (*folio.App, error) {
	cfg, err := folio.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if addr := c.String("addr"); addr != "" {
		cfg.Addr = addr
	}
	logger := log.New("folio")
	logger.SetLevel(log.INFO)
	if c.Bool("verbose") {
		logger.SetLevel(log.DEBUG)
	}
	return folio.New(cfg, views.Views(), folio.WithLogger(logger)), nil
}

func buildAction(c *cli.Context) error {
	app, err := newSite(c)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	_, err = app.Build(ctx)
	return err
}

func serveAction(c *cli.Context) error {
	app, err := newSite(c)
	if err != nil {
		return err
	}
	go func() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		<-ctx.Done()
		if err := app.Close(); err != nil {
			app.Logger.Errorf("close: %v", err)
		}
	}()
	return app.Start()
}

func newAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: folio new <project-name>")
	}
	return runNew(c.Args().First())
}
