package cli

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/xfusion-digital/scimport/pkg/cli/config"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
	"github.com/xfusion-digital/scimport/pkg/utils/apperr"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	// tokens usually live in a local .env rather than on the command line
	_ = godotenv.Load()

	var (
		loggerCfg config.Logger
		inputCfg  config.Input
		scimCfg   config.SCIM
	)

	app := &cli.Command{
		Name:    "scimport",
		Usage:   "Bulk-provision directory users from a CSV roster via SCIM",
		Version: "0.1.0",
		Flags: joinFlags(
			loggerCfg.Flags(),
			inputCfg.Flags(),
			scimCfg.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Configure logger
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With(slog.String("run_id", types.NewRunID().String()))

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runProvision(ctx, &loggerCfg, &inputCfg, &scimCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctx, err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
