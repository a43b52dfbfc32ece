package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/xfusion-digital/scimport/pkg/domain/model"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
)

func TestNewUserRecord(t *testing.T) {
	t.Run("valid row builds a full record", func(t *testing.T) {
		rec, err := model.NewUserRecord(map[string]string{
			"userName":    "jdoe",
			"displayName": "Jane Doe",
			"emails":      "jdoe@example.com;jane@example.org",
			"roles":       "admin;developer",
		})
		gt.NoError(t, err)
		gt.Equal(t, rec.UserName, "jdoe")
		gt.Equal(t, rec.DisplayName, "Jane Doe")
		gt.Equal(t, rec.Emails, []string{"jdoe@example.com", "jane@example.org"})
		gt.Equal(t, rec.Roles, []string{"admin", "developer"})
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		rec, err := model.NewUserRecord(map[string]string{
			"userName":    "  jdoe  ",
			"displayName": " Jane Doe ",
		})
		gt.NoError(t, err)
		gt.Equal(t, rec.UserName, "jdoe")
		gt.Equal(t, rec.DisplayName, "Jane Doe")
	})

	t.Run("absent emails and roles yield empty slices", func(t *testing.T) {
		rec, err := model.NewUserRecord(map[string]string{
			"userName":    "jdoe",
			"displayName": "Jane Doe",
		})
		gt.NoError(t, err)
		gt.Equal(t, len(rec.Emails), 0)
		gt.Equal(t, len(rec.Roles), 0)
	})

	t.Run("missing userName is a validation failure", func(t *testing.T) {
		_, err := model.NewUserRecord(map[string]string{
			"displayName": "Jane Doe",
		})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
	})

	t.Run("missing displayName is a validation failure", func(t *testing.T) {
		_, err := model.NewUserRecord(map[string]string{
			"userName": "jdoe",
		})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
	})

	t.Run("whitespace-only userName is a validation failure", func(t *testing.T) {
		_, err := model.NewUserRecord(map[string]string{
			"userName":    "   ",
			"displayName": "Jane Doe",
		})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
	})
}

func TestSplitMultiValue(t *testing.T) {
	testCases := []struct {
		name     string
		cell     string
		expected []string
	}{
		{
			name:     "two emails",
			cell:     "a@x.com;b@y.com",
			expected: []string{"a@x.com", "b@y.com"},
		},
		{
			name:     "empty cell",
			cell:     "",
			expected: nil,
		},
		{
			name:     "whitespace around segments",
			cell:     " a@x.com ; b@y.com ",
			expected: []string{"a@x.com", "b@y.com"},
		},
		{
			name:     "empty segments are dropped",
			cell:     ";a@x.com;;b@y.com;",
			expected: []string{"a@x.com", "b@y.com"},
		},
		{
			name:     "single value",
			cell:     "admin",
			expected: []string{"admin"},
		},
		{
			name:     "order is preserved",
			cell:     "c;a;b",
			expected: []string{"c", "a", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, model.SplitMultiValue(tc.cell), tc.expected)
		})
	}
}
