package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/xfusion-digital/scimport/pkg/cli/config"
	"github.com/xfusion-digital/scimport/pkg/service/roster"
	"github.com/xfusion-digital/scimport/pkg/usecase"
)

// runProvision wires the roster reader and SCIM client into one
// provisioning pass. Row failures do not make the run fail; only setup
// errors do.
func runProvision(ctx context.Context, loggerCfg *config.Logger, inputCfg *config.Input, scimCfg *config.SCIM) error {
	logger := ctxlog.From(ctx)

	if err := scimCfg.Validate(); err != nil {
		return err
	}

	mapping, err := inputCfg.LoadRoleMapping()
	if err != nil {
		return err
	}

	logger.Info("starting provisioning run",
		slog.Any("logging", loggerCfg),
		slog.Any("input", inputCfg),
		slog.Any("directory", scimCfg),
	)

	source := roster.New(inputCfg.CSVPath)
	client := scimCfg.Configure(mapping)

	uc := usecase.NewProvision(source, client,
		usecase.WithDryRun(scimCfg.DryRun),
	)

	if _, _, err := uc.Run(ctx); err != nil {
		return goerr.Wrap(err, "provisioning run failed")
	}
	return nil
}
