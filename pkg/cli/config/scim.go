package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/xfusion-digital/scimport/pkg/domain/model"
	"github.com/xfusion-digital/scimport/pkg/service/scim"
)

// SCIM holds directory endpoint configuration
type SCIM struct {
	BaseURL    string
	Token      string
	Enterprise string
	Timeout    time.Duration
	DryRun     bool
}

// Flags returns CLI flags for SCIM configuration
func (s *SCIM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "url",
			Usage:       "Directory base URL",
			Category:    "Directory",
			Required:    true,
			Sources:     cli.EnvVars("SCIMPORT_URL"),
			Destination: &s.BaseURL,
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "Bearer token with SCIM provisioning scope",
			Category:    "Directory",
			Sources:     cli.EnvVars("SCIM_TOKEN", "SCIMPORT_TOKEN"),
			Destination: &s.Token,
		},
		&cli.StringFlag{
			Name:        "enterprise",
			Usage:       "Enterprise slug for enterprise-scoped SCIM endpoints",
			Category:    "Directory",
			Sources:     cli.EnvVars("SCIMPORT_ENTERPRISE"),
			Destination: &s.Enterprise,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Per-request timeout",
			Category:    "Directory",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("SCIMPORT_TIMEOUT"),
			Destination: &s.Timeout,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Validate and log rows without sending requests",
			Category:    "Directory",
			Sources:     cli.EnvVars("SCIMPORT_DRY_RUN"),
			Destination: &s.DryRun,
		},
	}
}

// Validate validates the SCIM configuration
func (s *SCIM) Validate() error {
	if s.Token == "" && !s.DryRun {
		return goerr.New("a bearer token is required; set SCIM_TOKEN or pass --token")
	}
	if s.Timeout < 0 {
		return goerr.New("timeout must not be negative", goerr.V("timeout", s.Timeout))
	}
	return nil
}

// Configure creates a SCIM client with the given role mapping
func (s *SCIM) Configure(mapping model.RoleMapping) *scim.Client {
	opts := []scim.Option{
		scim.WithRoleMapping(mapping),
		scim.WithTimeout(s.Timeout),
	}
	if s.Enterprise != "" {
		opts = append(opts, scim.WithEnterprise(s.Enterprise))
	}
	return scim.New(s.BaseURL, s.Token, opts...)
}

// LogValue returns structured log value; the token itself never reaches
// the logs.
func (s SCIM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", s.BaseURL),
		slog.Bool("has_token", s.Token != ""),
		slog.String("enterprise", s.Enterprise),
		slog.Duration("timeout", s.Timeout),
		slog.Bool("dry_run", s.DryRun),
	)
}
