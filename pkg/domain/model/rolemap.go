package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
)

// RoleMappingMode selects how roles from the input land in the SCIM payload
type RoleMappingMode string

const (
	// RoleMappingRoles emits roles as core "roles" entries with value/primary
	RoleMappingRoles RoleMappingMode = "roles"
	// RoleMappingExtension emits roles under a schema extension attribute
	RoleMappingExtension RoleMappingMode = "extension"
)

// RoleMapping controls the payload shape for roles. Directories disagree
// here: GitHub Enterprise accepts core roles entries, others want a schema
// extension attribute, so the mapping is configuration rather than code.
type RoleMapping struct {
	Mode RoleMappingMode `yaml:"mode"`

	// Extension and Attribute are only used in extension mode
	Extension string `yaml:"extension,omitempty"`
	Attribute string `yaml:"attribute,omitempty"`

	// DefaultRole is assigned when a row carries no roles at all.
	// Empty means rows without roles get none.
	DefaultRole string `yaml:"defaultRole,omitempty"`
}

// DefaultRoleMapping returns the mapping used when no mapping file is given
func DefaultRoleMapping() RoleMapping {
	return RoleMapping{Mode: RoleMappingRoles}
}

// Validate validates the role mapping configuration
func (m *RoleMapping) Validate() error {
	switch m.Mode {
	case RoleMappingRoles:
		return nil
	case RoleMappingExtension:
		if m.Extension == "" {
			return goerr.New("extension URN is required in extension mode",
				goerr.T(types.ErrTagInput))
		}
		if m.Attribute == "" {
			return goerr.New("extension attribute is required in extension mode",
				goerr.T(types.ErrTagInput))
		}
		return nil
	default:
		return goerr.New("invalid role mapping mode",
			goerr.V("mode", m.Mode),
			goerr.T(types.ErrTagInput))
	}
}

// Apply resolves the roles to emit for a record, honoring DefaultRole
func (m *RoleMapping) Apply(roles []string) []string {
	if len(roles) == 0 && m.DefaultRole != "" {
		return []string{m.DefaultRole}
	}
	return roles
}
