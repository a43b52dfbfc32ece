package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/xfusion-digital/scimport/pkg/domain/model"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Input holds roster input configuration
type Input struct {
	CSVPath         string
	RoleMappingPath string
}

// Flags returns CLI flags for Input configuration
func (i *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "csv",
			Usage:       "Path to the roster CSV file",
			Category:    "Input",
			Required:    true,
			Sources:     cli.EnvVars("SCIMPORT_CSV"),
			Destination: &i.CSVPath,
		},
		&cli.StringFlag{
			Name:        "role-mapping",
			Usage:       "YAML file controlling how roles are emitted in the SCIM payload",
			Category:    "Input",
			Sources:     cli.EnvVars("SCIMPORT_ROLE_MAPPING"),
			Destination: &i.RoleMappingPath,
		},
	}
}

// LoadRoleMapping loads the role mapping file, or the default mapping
// when no file is configured.
func (i *Input) LoadRoleMapping() (model.RoleMapping, error) {
	mapping := model.DefaultRoleMapping()
	if i.RoleMappingPath == "" {
		return mapping, nil
	}

	data, err := os.ReadFile(i.RoleMappingPath)
	if err != nil {
		return mapping, goerr.Wrap(err, "failed to read role mapping file",
			goerr.V("path", i.RoleMappingPath),
			goerr.T(types.ErrTagInput))
	}
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return mapping, goerr.Wrap(err, "failed to parse role mapping file",
			goerr.V("path", i.RoleMappingPath),
			goerr.T(types.ErrTagInput))
	}
	if err := mapping.Validate(); err != nil {
		return mapping, goerr.Wrap(err, "invalid role mapping file",
			goerr.V("path", i.RoleMappingPath))
	}
	return mapping, nil
}

// LogValue returns structured log value
func (i Input) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("csv", i.CSVPath),
		slog.String("role_mapping", i.RoleMappingPath),
	)
}
