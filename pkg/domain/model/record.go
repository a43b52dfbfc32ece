package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
)

// Column names expected in the roster header row
const (
	ColumnUserName    = "userName"
	ColumnDisplayName = "displayName"
	ColumnEmails      = "emails"
	ColumnRoles       = "roles"
)

// MultiValueSeparator splits packed emails/roles cells
const MultiValueSeparator = ";"

var validate = validator.New()

// UserRecord is one directory account to provision, built from a single
// roster row. It lives only long enough to be submitted.
type UserRecord struct {
	UserName    string `validate:"required"`
	DisplayName string `validate:"required"`
	Emails      []string
	Roles       []string
}

// NewUserRecord builds a record from a header-keyed row. Validation
// happens here so the rest of the pipeline only sees well-formed records.
func NewUserRecord(fields map[string]string) (*UserRecord, error) {
	rec := &UserRecord{
		UserName:    strings.TrimSpace(fields[ColumnUserName]),
		DisplayName: strings.TrimSpace(fields[ColumnDisplayName]),
		Emails:      SplitMultiValue(fields[ColumnEmails]),
		Roles:       SplitMultiValue(fields[ColumnRoles]),
	}

	if err := validate.Struct(rec); err != nil {
		return nil, goerr.New(validationMessage(err),
			goerr.V("userName", rec.UserName),
			goerr.T(types.ErrTagValidation))
	}

	return rec, nil
}

// SplitMultiValue splits a packed cell on the multi-value separator,
// trimming whitespace and dropping empty segments while preserving order.
func SplitMultiValue(cell string) []string {
	var values []string
	for _, seg := range strings.Split(cell, MultiValueSeparator) {
		if seg = strings.TrimSpace(seg); seg != "" {
			values = append(values, seg)
		}
	}
	return values
}

// validationMessage converts validator.ValidationErrors into a
// human-readable message for row failure logs.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return strings.Join(messages, ", ")
}
