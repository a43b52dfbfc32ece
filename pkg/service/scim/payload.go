package scim

import (
	"github.com/xfusion-digital/scimport/pkg/domain/model"
)

// CoreUserSchema is the SCIM 2.0 core User resource schema URN
const CoreUserSchema = "urn:ietf:params:scim:schemas:core:2.0:User"

type emailEntry struct {
	Value   string `json:"value"`
	Type    string `json:"type"`
	Primary bool   `json:"primary"`
}

type roleEntry struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
}

// BuildPayload renders a record as a SCIM core User resource. The roles
// shape follows the configured mapping; everything else is fixed by the
// core schema. externalId mirrors userName so re-provisioned accounts
// stay correlatable with the source roster.
func BuildPayload(rec *model.UserRecord, mapping model.RoleMapping) map[string]any {
	schemas := []string{CoreUserSchema}

	emails := make([]emailEntry, 0, len(rec.Emails))
	for i, addr := range rec.Emails {
		emails = append(emails, emailEntry{
			Value:   addr,
			Type:    "work",
			Primary: i == 0,
		})
	}

	payload := map[string]any{
		"userName":    rec.UserName,
		"displayName": rec.DisplayName,
		"externalId":  rec.UserName,
		"active":      true,
		"emails":      emails,
	}

	roles := mapping.Apply(rec.Roles)
	switch mapping.Mode {
	case model.RoleMappingExtension:
		if len(roles) > 0 {
			schemas = append(schemas, mapping.Extension)
			payload[mapping.Extension] = map[string]any{
				mapping.Attribute: roles,
			}
		}
	default:
		entries := make([]roleEntry, 0, len(roles))
		for i, role := range roles {
			entries = append(entries, roleEntry{Value: role, Primary: i == 0})
		}
		payload["roles"] = entries
	}

	payload["schemas"] = schemas
	return payload
}
