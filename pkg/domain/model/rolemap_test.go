package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/xfusion-digital/scimport/pkg/domain/model"
)

func TestRoleMappingValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mapping model.RoleMapping
		wantErr bool
	}{
		{
			name:    "default mapping",
			mapping: model.DefaultRoleMapping(),
		},
		{
			name: "extension mapping with URN and attribute",
			mapping: model.RoleMapping{
				Mode:      model.RoleMappingExtension,
				Extension: "urn:example:params:scim:schemas:extension:acme:2.0:User",
				Attribute: "roles",
			},
		},
		{
			name: "extension mapping without URN",
			mapping: model.RoleMapping{
				Mode:      model.RoleMappingExtension,
				Attribute: "roles",
			},
			wantErr: true,
		},
		{
			name: "extension mapping without attribute",
			mapping: model.RoleMapping{
				Mode:      model.RoleMappingExtension,
				Extension: "urn:example:params:scim:schemas:extension:acme:2.0:User",
			},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			mapping: model.RoleMapping{Mode: "groups"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mapping.Validate()
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestRoleMappingApply(t *testing.T) {
	t.Run("roles pass through unchanged", func(t *testing.T) {
		m := model.DefaultRoleMapping()
		gt.Equal(t, m.Apply([]string{"admin", "dev"}), []string{"admin", "dev"})
	})

	t.Run("default role fills empty input", func(t *testing.T) {
		m := model.RoleMapping{Mode: model.RoleMappingRoles, DefaultRole: "user"}
		gt.Equal(t, m.Apply(nil), []string{"user"})
	})

	t.Run("default role does not override explicit roles", func(t *testing.T) {
		m := model.RoleMapping{Mode: model.RoleMappingRoles, DefaultRole: "user"}
		gt.Equal(t, m.Apply([]string{"admin"}), []string{"admin"})
	})

	t.Run("no default leaves empty input empty", func(t *testing.T) {
		m := model.DefaultRoleMapping()
		gt.Equal(t, len(m.Apply(nil)), 0)
	})
}
