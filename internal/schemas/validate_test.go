package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSchema_Valid(t *testing.T) {
	err := ValidateJSONString(ConfigSchema, `{"hosts": ["unkode-mania.net"], "verbose": true, "json": false}`)
	assert.NoError(t, err)

	err = ValidateJSONString(ConfigSchema, `{}`)
	assert.NoError(t, err)
}

func TestConfigSchema_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"hosts not array", `{"hosts": "unkode-mania.net"}`},
		{"empty hosts", `{"hosts": []}`},
		{"empty host", `{"hosts": [""]}`},
		{"unknown field", `{"colour": true}`},
		{"verbose not bool", `{"verbose": "yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(ConfigSchema, tt.content)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestSummarySchema(t *testing.T) {
	valid := `{"operation": "remove-login-block", "mode": "delete", "path": "a.html",
		"verdict": "ok", "outcome": "mutated", "fields": [{"key": "matches", "n": 1}],
		"action": "removed 1 block"}`
	assert.NoError(t, ValidateJSONString(SummarySchema, valid))

	invalid := `{"operation": "remove-login-block", "mode": "delete", "path": "a.html",
		"verdict": "maybe", "outcome": "mutated", "fields": []}`
	assert.Error(t, ValidateJSONString(SummarySchema, invalid))
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(ConfigSchema, `{ invalid json }`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr), "error should be SchemaLoadError type")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "hosts", Message: "Invalid type. Expected: array, given: string"},
			{Field: "(root)", Message: "Additional property colour is not allowed"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. hosts: Invalid type")
	assert.Contains(t, msg, "2. (root): Additional property colour")
}
